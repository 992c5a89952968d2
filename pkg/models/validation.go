package models

// ValidationResult is the outcome of validating a value against a section
// schema. It is produced fresh on every validation call and never mutated.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError describes a single schema violation. Validation collects
// every violation in one pass rather than stopping at the first.
type ValidationError struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Params  map[string]any `json:"params,omitempty"`
}
