package planner

import "fmt"

// Error codes for conditions with no defined fallback. Everything else in
// the pipeline degrades locally and never surfaces as an error.
const (
	CodeInvalidDates = "invalidDates"
	CodePlanTimeout  = "planTimeout"
)

// PlanError is a pipeline-fatal failure returned to the caller as a single
// result; the planner never returns a partial plan.
type PlanError struct {
	Code    string
	Message string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidDatesError(msg string) error {
	return &PlanError{Code: CodeInvalidDates, Message: msg}
}

func NewTimeoutError() error {
	return &PlanError{Code: CodePlanTimeout, Message: "plan generation exceeded the allowed time"}
}
