package timetrack

import "fmt"

// ParseErrorKind enumerates the taxonomy of parse failures the core can
// surface. Located is not a kind of its own: it is a decorator applied to
// any of the other kinds, carrying where the error happened.
type ParseErrorKind int

const (
	KindErrorReading ParseErrorKind = iota
	KindInvalidLineFormat
	KindInvalidTime
	KindInvalidDate
	KindMissingTime
	KindInvalidPeriod
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindErrorReading:
		return "error reading"
	case KindInvalidLineFormat:
		return "invalid line format"
	case KindInvalidTime:
		return "invalid time"
	case KindInvalidDate:
		return "invalid date"
	case KindMissingTime:
		return "missing time"
	case KindInvalidPeriod:
		return "invalid period"
	default:
		return "unknown"
	}
}

// ParseError is the core's single error type. Message carries the original
// raw text verbatim, never reformatted. File/Line are empty/zero unless the
// error has been decorated with Located; pattern matching on Kind ignores
// that decoration.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	File    string
	Line    int
	located bool
}

func (e *ParseError) Error() string {
	if e.located {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsLocated reports whether Located has decorated this error with a
// (file, line) position.
func (e *ParseError) IsLocated() bool { return e.located }

// Located returns a copy of e decorated with file/line context. The inner
// kind and message are unchanged; this is a decorator, not a new error.
func (e *ParseError) Located(file string, line int) *ParseError {
	cp := *e
	cp.File = file
	cp.Line = line
	cp.located = true
	return &cp
}

func newParseError(kind ParseErrorKind, raw string) *ParseError {
	return &ParseError{Kind: kind, Message: raw}
}

// ErrorReading wraps a raw I/O failure message from a file-source collaborator.
func ErrorReading(raw string) *ParseError { return newParseError(KindErrorReading, raw) }

// InvalidLineFormat marks an entry line that failed structural validation
// (no project tag, duplicate outcome tag, ...).
func InvalidLineFormat(raw string) *ParseError { return newParseError(KindInvalidLineFormat, raw) }

// InvalidTime marks a duration token that failed to parse or overflowed u32 minutes.
func InvalidTime(raw string) *ParseError { return newParseError(KindInvalidTime, raw) }

// InvalidDate marks a TT header whose date capture failed calendar validation.
func InvalidDate(raw string) *ParseError { return newParseError(KindInvalidDate, raw) }

// MissingTime marks an otherwise well-formed entry line with zero summed minutes.
func MissingTime(raw string) *ParseError { return newParseError(KindMissingTime, raw) }

// InvalidPeriod marks a period string or period value outside its valid range.
func InvalidPeriod(raw string) *ParseError { return newParseError(KindInvalidPeriod, raw) }

// AsLocated recovers the *ParseError behind err, if it is one, whether or
// not it has been decorated with Located.
func AsLocated(err error) (*ParseError, bool) {
	pe, ok := err.(*ParseError)
	return pe, ok
}

func toLocatedParseError(err error, file string, line int) *ParseError {
	if pe, ok := AsLocated(err); ok {
		return pe.Located(file, line)
	}
	return ErrorReading(err.Error()).Located(file, line)
}
