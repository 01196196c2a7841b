// Package convert provides the value conversion pipeline applied to text
// leaves before they are rendered.
//
// A Pipeline is an ordered list of named functions. For each value the
// first function that accepts it is applied and the rest are skipped; a
// function declines a value by returning ErrNotApplicable. Values nobody
// accepts pass through unchanged.
//
//	p := convert.NewPipeline(
//	    convert.Conversion{Name: "percent", Fn: convert.For(func(n int) (any, error) {
//	        return strconv.Itoa(n) + "%", nil
//	    })},
//	)
//	out, err := p.Convert(42) // "42%"
//
// Configuration files refer to conversions by dotted name. Names resolve
// against a Registry once at load time; nothing is looked up by name during
// rendering.
package convert
