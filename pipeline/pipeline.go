// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package pipeline connects Intcode engines in a ring, each stage's output
// becoming the next stage's input.
package pipeline

import (
	"log"

	"github.com/ezrec/intcode/intcode"
)

// Pipeline is a ring of independent engines advanced cooperatively.
type Pipeline struct {
	Verbose bool              // If set, logs each hand-off between stages.
	Stages  []*intcode.Engine // Engines, in signal order.
}

// NewPipeline creates a pipeline over the given engines.
func NewPipeline(stages ...*intcode.Engine) (pipe *Pipeline) {
	pipe = &Pipeline{
		Stages: stages,
	}

	return
}

// FromPhases clones prototype once per phase setting, and queues the phase
// setting as each stage's first input.
func FromPhases(prototype *intcode.Engine, phases ...int64) (pipe *Pipeline) {
	pipe = &Pipeline{}

	for _, phase := range phases {
		pipe.Stages = append(pipe.Stages, prototype.Clone().AddInput(phase))
	}

	return
}

// feed queues signal into a stage and steps it to its next output.
// A stage that has already halted is left untouched.
func (pipe *Pipeline) feed(index int, signal int64) (output int64, halted bool, err error) {
	stage := pipe.Stages[index]
	if stage.Halted() {
		halted = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrStage{Index: index, Err: err}
		}
	}()

	result, output, err := stage.AddInput(signal).Step()
	if err != nil {
		return
	}

	switch result {
	case intcode.RESULT_HALT:
		halted = true
	case intcode.RESULT_INPUT:
		// A stage may only wait on the signal it was just given.
		err = intcode.ErrInputStarved
	case intcode.RESULT_OUTPUT:
		if pipe.Verbose {
			log.Printf("pipeline: stage %d: %d -> %d", index, signal, output)
		}
	}

	return
}

// Pass sends signal once through every stage, returning the output of the
// last stage. halted is set if any stage halted instead of producing an
// output; signal is then the last output produced.
func (pipe *Pipeline) Pass(signal int64) (output int64, halted bool, err error) {
	if len(pipe.Stages) == 0 {
		err = ErrPipelineEmpty
		return
	}

	output = signal
	for index := range pipe.Stages {
		var next int64
		next, halted, err = pipe.feed(index, output)
		if err != nil || halted {
			return
		}
		output = next
	}

	return
}

// Run feeds signal into the first stage and cycles outputs around the ring
// until every stage has halted. Halted stages are skipped, passing the
// signal on unchanged. It returns the last signal produced.
func (pipe *Pipeline) Run(signal int64) (output int64, err error) {
	if len(pipe.Stages) == 0 {
		err = ErrPipelineEmpty
		return
	}

	output = signal
	for index := 0; !pipe.Halted(); index = (index + 1) % len(pipe.Stages) {
		var next int64
		var halted bool
		next, halted, err = pipe.feed(index, output)
		if err != nil {
			return
		}
		if !halted {
			output = next
		}
	}

	return
}

// Halted returns true once every stage has halted.
func (pipe *Pipeline) Halted() bool {
	for _, stage := range pipe.Stages {
		if !stage.Halted() {
			return false
		}
	}
	return true
}
