package scanner

const (
	// Sentinel in hexDigitClass for the point character.
	decimalPointClass = -4
	// Sentinel in hexDigitClass for bytes that are neither a hex digit nor
	// a point.
	otherClass = -1
)

// hexDigitClass maps a byte to its hex digit value, decimalPointClass, or
// otherClass. 128 entries would suffice for ASCII input, but a full 256-entry
// table lets any byte index it without a bounds branch.
var hexDigitClass = [256]int8{}

func init() {
	for i := range hexDigitClass {
		hexDigitClass[i] = otherClass
	}
	for c := '0'; c <= '9'; c++ {
		hexDigitClass[c] = int8(c - '0')
	}
	for c := 'A'; c <= 'F'; c++ {
		hexDigitClass[c] = int8(c-'A') + 10
	}
	for c := 'a'; c <= 'f'; c++ {
		hexDigitClass[c] = int8(c-'a') + 10
	}
	hexDigitClass['.'] = decimalPointClass
}
