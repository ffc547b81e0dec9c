package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Document fields.
	FieldLanguage = "language"
	FieldStrategy = "strategy"
	FieldBytes    = "bytes"

	// Selection fields.
	FieldSelections = "selections"
	FieldStart      = "start"
	FieldEnd        = "end"
	FieldSteps      = "steps"
	FieldAction     = "action"
	FieldHistory    = "history"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
