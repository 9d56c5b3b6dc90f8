package pipeline

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrPipelineEmpty = errors.New(f("pipeline empty"))
)

// ErrStage identifies the stage whose engine failed.
type ErrStage struct {
	Index int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("stage %d %v", err.Index, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}
