package machine

import (
	"errors"

	"github.com/ezrec/utm/translate"
)

var f = translate.From

var (
	// Definition errors
	ErrStatesEmpty    = errors.New(f("state list empty"))
	ErrInitialMissing = errors.New(f("initial state missing"))
	ErrFinalMissing   = errors.New(f("final state missing"))

	// Rule errors
	ErrRuleFromMissing = errors.New(f("current state missing"))
	ErrRuleToMissing   = errors.New(f("next state missing"))
	ErrRuleMoveInvalid = errors.New(f("tape displacement invalid"))
)

// ErrRule indicates which transition rule a definition error refers to.
type ErrRule struct {
	Index int
	Err   error
}

func (err *ErrRule) Error() string {
	return f("rule %d %v", err.Index, err.Err)
}

func (err *ErrRule) Unwrap() error {
	return err.Err
}
