package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (E001-E019)
	// ============================================

	"E001": {
		Category:   CategoryValidation,
		Message:    "nil root node",
		Detail:     "Attach was called with a nil description node; no partial mount is attempted.",
		Suggestion: "Pass the node returned by a vdom constructor, e.g. vdom.Div(...).",
	},
	"E002": {
		Category:   CategoryValidation,
		Message:    "invalid attach container",
		Detail:     "The container is not a valid host element reference.",
		Suggestion: "Pass a *dom.Element created with dom.NewElement.",
	},

	// ============================================
	// Runtime Errors (E020-E039)
	// ============================================

	"E020": {
		Category:   CategoryRuntime,
		Message:    "hook called outside component render",
		Detail:     "UseState and UseEffect read the currently rendering component's identity path; there is none here.",
		Suggestion: "Call hooks only from the body of a component function.",
	},

	// ============================================
	// Config Errors (E040-E059)
	// ============================================

	"E040": {
		Category:   CategoryConfig,
		Message:    "cannot read config file",
		Suggestion: "Check that loom.json exists and is readable, or omit it to use defaults.",
	},
	"E041": {
		Category:   CategoryConfig,
		Message:    "invalid config file",
		Detail:     "loom.json is present but is not valid JSON for the expected schema.",
	},

	// ============================================
	// Snapshot Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategorySnapshot,
		Message:  "snapshot not found",
	},
	"E061": {
		Category:   CategorySnapshot,
		Message:    "snapshot store unavailable",
		Suggestion: "Check the snapshot directory or S3 bucket configuration.",
	},
}
