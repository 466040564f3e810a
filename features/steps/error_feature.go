package steps

import "fmt"

// ErrorFeature collects assertion failures so that testify can be used
// inside godog steps.
type ErrorFeature struct {
	err error
}

// Errorf implements assert.TestingT
func (e *ErrorFeature) Errorf(format string, args ...interface{}) {
	if e.err == nil {
		e.err = fmt.Errorf(format, args...)
	}
}

// StepError returns the first failure of the current step.
func (e *ErrorFeature) StepError() error {
	return e.err
}

func (e *ErrorFeature) Reset() {
	e.err = nil
}
