package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vmihailenco/msgpack"

	floatfu "github.com/ccbrown/float-fu"
)

// Record is emitted for every literal read from the input.
type Record struct {
	Input string  `json:"input" msgpack:"input"`
	Value float64 `json:"value" msgpack:"value"`
	Bits  string  `json:"bits" msgpack:"bits"`
	Error string  `json:"error,omitempty" msgpack:"error,omitempty"`
}

type encoder interface {
	Encode(v interface{}) error
}

func process(r io.Reader, enc encoder, strict bool) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		record := Record{Input: s.Text()}
		d, err := floatfu.ParseFloat64(s.Text())
		if err != nil {
			if strict {
				return err
			}
			logrus.Warn(err.Error())
			record.Error = err.Error()
		} else {
			record.Value = d
			record.Bits = fmt.Sprintf("%016x", math.Float64bits(d))
		}
		if err := enc.Encode(&record); err != nil {
			return errors.Wrap(err, "error encoding record")
		}
	}
	return errors.Wrap(s.Err(), "error reading input")
}

func main() {
	format := pflag.String("format", "json", "output format: json or msgpack")
	strict := pflag.Bool("strict", false, "exit on the first invalid literal")
	pflag.Parse()

	var enc encoder
	switch *format {
	case "json":
		enc = jsoniter.NewEncoder(os.Stdout)
	case "msgpack":
		enc = msgpack.NewEncoder(os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, "the --format flag must be json or msgpack")
		os.Exit(1)
	}

	if pflag.NArg() == 0 {
		if err := process(os.Stdin, enc, *strict); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	for _, path := range pflag.Args() {
		f, err := os.Open(path)
		if err != nil {
			logrus.Fatal(errors.Wrapf(err, "error opening %v", path))
		}
		err = process(f, enc, *strict)
		f.Close()
		if err != nil {
			logrus.Fatal(err)
		}
	}
}
