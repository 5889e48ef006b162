package config

import (
	"errors"

	"github.com/ezrec/utm/translate"
)

var f = translate.From

var (
	// Script conversion errors
	ErrWantString = errors.New(f("string or None required"))
	ErrWantList   = errors.New(f("list required"))
	ErrWantDict   = errors.New(f("dict required"))
)

// ErrKeyMissing reports an absent required top-level definition key.
type ErrKeyMissing string

func (err ErrKeyMissing) Error() string {
	return f("%v key required", string(err))
}

// ErrDisplacementInvalid reports a displacement that is not L, R, or S.
type ErrDisplacementInvalid string

func (err ErrDisplacementInvalid) Error() string {
	return f("'%v' is not a displacement", string(err))
}

// ErrScriptGlobal indicates which script global a conversion error refers
// to.
type ErrScriptGlobal struct {
	Global string
	Err    error
}

func (err *ErrScriptGlobal) Error() string {
	return f("global %v: %v", err.Global, err.Err)
}

func (err *ErrScriptGlobal) Unwrap() error {
	return err.Err
}
