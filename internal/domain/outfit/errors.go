package outfit

import "fmt"

// Error codes surfaced through apperrors.AppError.
const (
	CodeMissingInput       = "missing_input"
	CodeWeatherUnavailable = "weather_unavailable"
	CodeUnknownCategory    = "unknown_category"
	CodeModelError         = "model_error"
)

// UnknownCategoryError reports a value outside an encoder's vocabulary.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("%s: unknown label %q", e.Field, e.Value)
}
