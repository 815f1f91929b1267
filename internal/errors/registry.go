package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// Error codes used across the module.
const (
	CodeConfigRead      = "E100"
	CodeConfigSyntax    = "E101"
	CodeInvalidPort     = "E102"
	CodeInvalidDuration = "E103"
	CodeInvalidUpstream = "E104"
	CodeInvalidTarget   = "E105"
	CodeInvalidEnv      = "E106"

	CodeListen        = "E120"
	CodeBadRequest    = "E121"
	CodeToastNotFound = "E122"
	CodeUnavailable   = "E123"

	CodeExchange      = "E140"
	CodeTargetMissing = "E141"

	CodeInvalidArgs = "E160"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
		Detail:   "hxglue.json exists but could not be read.",
	},
	CodeConfigSyntax: {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "hxglue.json is not valid JSON or has a field of the wrong type.",
	},
	CodeInvalidPort: {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The server port must be between 1 and 65535.",
	},
	CodeInvalidDuration: {
		Category: CategoryConfig,
		Message:  "Invalid toast duration",
		Detail:   "Toast display and leave durations must be positive numbers of milliseconds.",
	},
	CodeInvalidUpstream: {
		Category: CategoryConfig,
		Message:  "Invalid upstream URL",
		Detail:   "The upstream must be an absolute http or https URL.",
	},
	CodeInvalidTarget: {
		Category: CategoryConfig,
		Message:  "Invalid element id",
		Detail:   "Element ids must be non-empty and contain no whitespace.",
	},
	CodeInvalidEnv: {
		Category: CategoryConfig,
		Message:  "Invalid environment override",
		Detail:   "An HXGLUE_* environment variable could not be parsed.",
	},

	// ============================================
	// Server Errors (E120-E139)
	// ============================================

	CodeListen: {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The HTTP server could not start or stopped unexpectedly.",
	},
	CodeBadRequest: {
		Category: CategoryServer,
		Message:  "Bad request",
		Detail:   "The request body is not valid JSON for this endpoint.",
	},
	CodeToastNotFound: {
		Category: CategoryServer,
		Message:  "Toast not found",
		Detail:   "No visible toast has this id. It may already be leaving.",
	},
	CodeUnavailable: {
		Category: CategoryServer,
		Message:  "Host unavailable",
		Detail:   "The page host stopped or did not answer before the request was cancelled.",
	},

	// ============================================
	// Exchange Errors (E140-E159)
	// ============================================

	CodeExchange: {
		Category: CategoryExchange,
		Message:  "Exchange failed",
		Detail:   "The request to the upstream failed before a response was received.",
	},
	CodeTargetMissing: {
		Category: CategoryExchange,
		Message:  "Swap target not found",
		Detail:   "No element in the page has the requested target id.",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	CodeInvalidArgs: {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with missing or unexpected arguments.",
	},
}

// AllCodes returns all registered error codes, sorted.
func AllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
