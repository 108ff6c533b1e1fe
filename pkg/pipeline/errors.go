package pipeline

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/amake/pkg/errors"
)

func stageNotFound(cause error, name string, position int) error {
	details := errors.GetErrorDetails(cause)
	msg := fmt.Sprintf("unknown stage '%s' at position %d", name, position)
	if suggestion, ok := details["suggestion"].(string); ok {
		msg += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
	}
	return errors.New(errors.ErrStageNotFound, msg).
		WithDetail("stage", name).
		WithDetail("position", position).
		WithDetails(withoutStage(details))
}

func stageFailed(cause error, name string, position int) error {
	return errors.Wrapf(cause, errors.ErrStageExecution, "stage '%s' at position %d failed", name, position).
		WithDetail("stage", name).
		WithDetail("position", position)
}

func withoutStage(details map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(details))
	for k, v := range details {
		if k != "stage" {
			out[k] = v
		}
	}
	return out
}

// StageContext returns the stage name and 0-based position recorded on a
// pipeline error, if any
func StageContext(err error) (name string, position int, ok bool) {
	var amakeErr *errors.AmakeError
	for err != nil {
		if !stderrors.As(err, &amakeErr) {
			return "", 0, false
		}
		name, nameOK := amakeErr.Details["stage"].(string)
		position, posOK := amakeErr.Details["position"].(int)
		if nameOK && posOK {
			return name, position, true
		}
		err = amakeErr.Wrapped
	}
	return "", 0, false
}
