// Package errors provides structured, actionable errors for utemplates.
//
// Every error carries a registered code and a category:
//   - config: the configuration document is malformed or names an unknown
//     conversion
//   - conversion: a conversion function failed on a leaf value
//   - structural: the node tree cannot be serialized (bad tag name, bad
//     attribute key, children on a void element)
//   - io: writing or uploading the rendered document failed
//
// Category sentinels work with the standard library:
//
//	if errors.Is(err, uerrors.ErrStructural) { ... }
//
// # Usage
//
//	err := errors.New("E121").
//	    WithPath("myapp.convert.money").
//	    WithSuggestion("Register the function with convert.Register before loading the config")
//
//	fmt.Println(err.Format())
package errors
