package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryRuntime,
		Message:  "View projection panicked",
		Detail:   "A function passed to a view combinator panicked. The derived snapshot is marked failed and the error is delivered to whoever awaits it.",
	},
	"E102": {
		Category: CategoryRuntime,
		Message:  "Scheduled task panicked",
		Detail:   "A task forked onto the scheduler panicked. The task was dropped and the scheduler kept running.",
	},
	"E103": {
		Category: CategoryRuntime,
		Message:  "Async projection failed",
		Detail:   "The function passed to MapAsync returned an error.",
	},

	// ============================================
	// Render Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryRender,
		Message:  "Reconciliation pass failed",
		Detail:   "The document tree could not be synchronized with the DOM. The previous node baseline was kept for the next pass.",
	},

	// ============================================
	// Config Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be parsed or contains out-of-range values.",
	},

	// ============================================
	// Usage Warnings (W001-W099)
	// ============================================

	"W001": {
		Category: CategoryUsage,
		Message:  "Invalid attempt to change value of a Var after calling SetFinal",
		Detail:   "A finalized Var is immutable. The write was ignored.",
	},
	"W002": {
		Category: CategoryUsage,
		Message:  "Template hole filled with data of the wrong kind",
		Detail:   "The hole was left untouched.",
	},
	"W003": {
		Category: CategoryUsage,
		Message:  "Attribute placeholder refers to an unknown or non-text hole",
		Detail:   "The placeholder was replaced with an empty string.",
	},
	"W004": {
		Category: CategoryUsage,
		Message:  "Run target not found",
		Detail:   "No element with the requested id exists under the given root. Nothing was rendered.",
	},
	"W005": {
		Category: CategoryUsage,
		Message:  "Template not found",
		Detail:   "No template was prepared under the requested name. An empty document was used instead.",
	},
	"W006": {
		Category: CategoryUsage,
		Message:  "Template has no hole with this name",
		Detail:   "The supplied hole matches no ws-* marker or ${} placeholder in the markup and was ignored.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
