package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration document could not be read or is not valid JSON.",
		DocURL:   "https://utemplates.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Unresolved conversion",
		Detail:   "A name in \"conversions\" does not match any registered conversion function.",
		DocURL:   "https://utemplates.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "The configuration file named by U_TEMPLATING_CONFIG_PATH does not exist.",
		DocURL:   "https://utemplates.dev/docs/errors/E122",
	},

	// ============================================
	// Conversion Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryConversion,
		Message:  "Conversion failed",
		Detail:   "A conversion function accepted the value but returned an error.",
		DocURL:   "https://utemplates.dev/docs/errors/E200",
	},

	// ============================================
	// Structural Errors (E300-E319)
	// ============================================

	"E300": {
		Category: CategoryStructural,
		Message:  "Invalid tag name",
		Detail:   "Tag names must be non-empty and must not contain whitespace, quotes, '=', '/', '<' or '>'.",
		DocURL:   "https://utemplates.dev/docs/errors/E300",
	},
	"E301": {
		Category: CategoryStructural,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must be non-empty and must not contain whitespace, quotes, '=', '/', '<' or '>'.",
		DocURL:   "https://utemplates.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryStructural,
		Message:  "Children on void element",
		Detail:   "Void elements such as <br> and <input> cannot have children.",
		DocURL:   "https://utemplates.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategoryStructural,
		Message:  "Unsupported render input",
		Detail:   "Render accepts a node, a string, or a slice of nodes and strings.",
		DocURL:   "https://utemplates.dev/docs/errors/E303",
	},
	"E304": {
		Category: CategoryStructural,
		Message:  "Invalid tree document",
		Detail:   "A tree document node must be a string or an object with exactly one of tag, text, safe, group, doctype or comment.",
		DocURL:   "https://utemplates.dev/docs/errors/E304",
	},

	// ============================================
	// IO Errors (E400-E419)
	// ============================================

	"E400": {
		Category: CategoryIO,
		Message:  "Write failed",
		Detail:   "The rendered document could not be written.",
		DocURL:   "https://utemplates.dev/docs/errors/E400",
	},
	"E401": {
		Category: CategoryIO,
		Message:  "Upload failed",
		Detail:   "The rendered document could not be uploaded to object storage.",
		DocURL:   "https://utemplates.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryIO,
		Message:  "Read failed",
		Detail:   "An input document could not be read.",
		DocURL:   "https://utemplates.dev/docs/errors/E402",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
