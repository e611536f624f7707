package errs

import (
	"strconv"
	"strings"
)

// graphError is a plain message error that builds under TinyGo.
type graphError struct {
	message string
	cause   error
}

func (e *graphError) Error() string {
	return e.message
}

// Unwrap exposes the first error argument given to New.
func (e *graphError) Unwrap() error {
	return e.cause
}

// New joins its arguments with spaces into an error message.
// A ':' rune is glued to the previous word, empty strings are skipped.
func New(args ...any) error {
	var out strings.Builder
	var space string
	var cause error

	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			out.WriteString(space + v)
		case []string:
			for _, s := range v {
				if s == "" {
					continue
				}
				out.WriteString(space + s)
				space = " "
			}
		case rune:
			if v == ':' {
				out.WriteString(":")
				continue
			}
			out.WriteString(space + string(v))
		case int:
			out.WriteString(space + strconv.Itoa(v))
		case float64:
			out.WriteString(space + strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out.WriteString(space + strconv.FormatBool(v))
		case error:
			if cause == nil {
				cause = v
			}
			out.WriteString(space + v.Error())
		default:
			out.WriteString(space + "unsupported arg " + strconv.Itoa(i))
		}
		space = " "
	}

	return &graphError{message: out.String(), cause: cause}
}
