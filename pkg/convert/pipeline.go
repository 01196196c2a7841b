package convert

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/utemplates/internal/errors"
)

// ErrNotApplicable is returned (possibly wrapped) by a Func that does not
// handle the runtime kind of its argument. The pipeline then tries the
// next conversion.
var ErrNotApplicable = stderrors.New("convert: not applicable")

// Func transforms a leaf value before it is rendered as text.
type Func func(v any) (any, error)

// Conversion is a named Func.
type Conversion struct {
	Name string
	Fn   Func
}

// Pipeline is an ordered, immutable list of conversions.
// The zero Pipeline passes every value through unchanged.
type Pipeline struct {
	conversions []Conversion
}

// NewPipeline returns a pipeline trying conversions in the given order.
func NewPipeline(conversions ...Conversion) Pipeline {
	cs := make([]Conversion, 0, len(conversions))
	for _, c := range conversions {
		if c.Fn != nil {
			cs = append(cs, c)
		}
	}
	return Pipeline{conversions: cs}
}

// Len returns the number of conversions.
func (p Pipeline) Len() int { return len(p.conversions) }

// Names returns the conversion names in order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p.conversions))
	for i, c := range p.conversions {
		names[i] = c.Name
	}
	return names
}

// Convert applies the first conversion that accepts v. If none does, v is
// returned unchanged. A conversion failing for any reason other than
// ErrNotApplicable, including a panic, yields an E200 error carrying v and
// the conversion name.
func (p Pipeline) Convert(v any) (any, error) {
	for _, c := range p.conversions {
		out, err := apply(c.Fn, v)
		if err == nil {
			return out, nil
		}
		if stderrors.Is(err, ErrNotApplicable) {
			continue
		}
		return nil, errors.New("E200").WithConversion(c.Name, v).Wrap(err)
	}
	return v, nil
}

// apply runs fn, reporting a panic as an error.
func apply(fn Func, v any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("conversion panicked: %v", r)
		}
	}()
	return fn(v)
}

// For adapts a typed function into a Func that only applies to values of
// dynamic type T.
func For[T any](fn func(T) (any, error)) Func {
	return func(v any) (any, error) {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrNotApplicable, v)
		}
		return fn(t)
	}
}

// Any adapts an infallible function that applies to every value.
func Any(fn func(any) any) Func {
	return func(v any) (any, error) {
		return fn(v), nil
	}
}
