package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Built-in conversion names.
const (
	TimeRFC3339  = "utemplates.convert.time_rfc3339"
	Stringer     = "utemplates.convert.stringer"
	FloatCompact = "utemplates.convert.float_compact"
	BoolYesNo    = "utemplates.convert.bool_yes_no"
	BytesUTF8    = "utemplates.convert.bytes_utf8"
	NilEmpty     = "utemplates.convert.nil_empty"
)

func registerBuiltins(r *Registry) {
	r.Register(TimeRFC3339, For(func(t time.Time) (any, error) {
		return t.Format(time.RFC3339), nil
	}))
	r.Register(Stringer, For(func(s fmt.Stringer) (any, error) {
		if isNilPointer(s) {
			return "", nil
		}
		return s.String(), nil
	}))
	r.Register(FloatCompact, func(v any) (any, error) {
		switch f := v.(type) {
		case float64:
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
		}
		return nil, fmt.Errorf("%w: %T", ErrNotApplicable, v)
	})
	r.Register(BoolYesNo, For(func(b bool) (any, error) {
		if b {
			return "yes", nil
		}
		return "no", nil
	}))
	r.Register(BytesUTF8, For(func(b []byte) (any, error) {
		return string(b), nil
	}))
	r.Register(NilEmpty, func(v any) (any, error) {
		if v != nil {
			return nil, ErrNotApplicable
		}
		return "", nil
	})
}

// isNilPointer reports whether v holds a nil pointer, so calling a method
// on it could dereference nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
