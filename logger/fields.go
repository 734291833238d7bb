package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Code generation
	FieldNameCode = "name_code"
	FieldDateCode = "date_code"
	FieldCode     = "code"
	FieldRule     = "rule"
	FieldSurname  = "surname"
	FieldFiltered = "filtered"

	// Names at each normalization step
	FieldGivenName = "given_name"
	FieldPaternal  = "paternal_surname"
	FieldMaternal  = "maternal_surname"

	// Tables and config
	FieldSource = "source"
	FieldSchema = "schema"
	FieldFile   = "file"
	FieldSheet  = "sheet"

	// Batch
	FieldRow   = "row"
	FieldCount = "count"
	FieldError = "error"

	FieldVerbosity  = "verbosity"
	FieldDurationMS = "duration_ms"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	g := fiscal.NewGenerator(t, fiscal.WithLogger(logger.ComponentLogger("fiscal")))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
