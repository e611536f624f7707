package logging

import (
	"github.com/felixgeelhaar/bolt/v3"
)

// Field applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

func ChartType(t string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("chart_type", t)
	}
}

func Format(f string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("format", f)
	}
}

func File(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("file", name)
	}
}

func Bytes(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("bytes", n)
	}
}

// ErrorField adds err, or nothing when err is nil.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// With applies fields in order.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}
