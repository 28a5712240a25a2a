package models

// Result is the success/failure shape handed to presentation code.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewResult converts a service error into a Result; the error text is used
// as the human-readable reason.
func NewResult(err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}
