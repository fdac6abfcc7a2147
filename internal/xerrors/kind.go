package xerrors

// kindError is a sentinel of one failure class. Sentinels are compared by identity.
type kindError struct {
	name string
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

var (
	// ErrInvalidEncoding means input is a null pointer or not valid UTF-8 text.
	ErrInvalidEncoding = &kindError{name: "InvalidEncoding", msg: "invalid encoding"}
	// ErrInvalidNumber means input text is not a number.
	ErrInvalidNumber = &kindError{name: "InvalidNumber", msg: "invalid number"}
	// ErrDivisionByZero means divisor is zero-valued.
	ErrDivisionByZero = &kindError{name: "DivisionByZero", msg: "division by zero"}
	// ErrConversionOverflow means value does not fit into requested fixed-width integer.
	ErrConversionOverflow = &kindError{name: "ConversionOverflow", msg: "conversion overflow"}
	// ErrInvalidScale means requested scale cannot be applied.
	ErrInvalidScale = &kindError{name: "InvalidScale", msg: "invalid scale"}
)

var kinds = []*kindError{
	ErrInvalidEncoding,
	ErrInvalidNumber,
	ErrDivisionByZero,
	ErrConversionOverflow,
	ErrInvalidScale,
}

// Kind returns name of failure class of err or empty string for nil error.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if Is(err, k) {
			return k.name
		}
	}

	return "Unknown"
}
