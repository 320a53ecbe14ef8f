package models

// Outcome is the result of a best-effort notification attempt.
// Notifiers always return one, they never fail with an error.
type Outcome struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// FailedOutcome builds an unsuccessful outcome carrying the error text.
func FailedOutcome(message, detail string) Outcome {
	return Outcome{
		Success: false,
		Message: message,
		Data:    map[string]any{"error": detail},
	}
}
