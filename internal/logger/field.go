package logger

import (
	"time"

	"github.com/rs/zerolog"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
	kindDuration
	kindError
)

// Field is a typed key/value pair attached to a log line.
type Field struct {
	key  string
	kind fieldKind
	str  string
	num  int64
	flt  float64
	err  error
}

func String(key, value string) Field { return Field{key: key, kind: kindString, str: value} }
func Int(key string, value int) Field { return Field{key: key, kind: kindInt, num: int64(value)} }
func Float(key string, value float64) Field {
	return Field{key: key, kind: kindFloat, flt: value}
}
func Duration(key string, value time.Duration) Field {
	return Field{key: key, kind: kindDuration, num: int64(value)}
}
func Err(err error) Field { return Field{key: zerolog.ErrorFieldName, kind: kindError, err: err} }

func (f Field) addTo(e *zerolog.Event) {
	switch f.kind {
	case kindString:
		e.Str(f.key, f.str)
	case kindInt:
		e.Int64(f.key, f.num)
	case kindFloat:
		e.Float64(f.key, f.flt)
	case kindDuration:
		e.Dur(f.key, time.Duration(f.num))
	case kindError:
		e.Err(f.err)
	}
}

func (f Field) addToContext(c zerolog.Context) zerolog.Context {
	switch f.kind {
	case kindString:
		return c.Str(f.key, f.str)
	case kindInt:
		return c.Int64(f.key, f.num)
	case kindFloat:
		return c.Float64(f.key, f.flt)
	case kindDuration:
		return c.Dur(f.key, time.Duration(f.num))
	case kindError:
		return c.Err(f.err)
	}
	return c
}
