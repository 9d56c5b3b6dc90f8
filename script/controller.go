// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script drives an Intcode engine interactively from a Starlark
// script.
//
// The script must define input(outputs), called whenever the program needs
// an input that has not been queued. It receives the list of outputs
// produced since the previous call, and returns either an int or a list of
// ints to queue. The script may define output(value), called for each
// output; returning False from it ends the run.
//
// The builtins peek(address) and poke(address, value) access the engine's
// memory directly. Module globals are frozen once the script is loaded, so
// callbacks keep their state in the predeclared dict named state.
package script

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
)

// Controller is a Starlark driven engine controller.
type Controller struct {
	Verbose bool            // If set, logs each callback.
	Engine  *intcode.Engine // Engine under control.
	State   *starlark.Dict  // The script's mutable state dict.

	thread  *starlark.Thread
	globals starlark.StringDict
	input   starlark.Callable
	output  starlark.Callable
	recent  []int64
}

// NewController loads the script in src (a string, []byte or io.Reader) and
// binds it to eng.
func NewController(eng *intcode.Engine, filename string, src any) (ctl *Controller, err error) {
	ctl = &Controller{
		Engine: eng,
		State:  starlark.NewDict(0),
		thread: &starlark.Thread{Name: filename},
	}

	ctl.thread.Print = func(_ *starlark.Thread, msg string) {
		log.Printf("%v: %v", filename, msg)
	}

	pred := starlark.StringDict{
		"peek":  starlark.NewBuiltin("peek", ctl.peek),
		"poke":  starlark.NewBuiltin("poke", ctl.poke),
		"state": ctl.State,
	}

	opts := syntax.FileOptions{}
	ctl.globals, err = starlark.ExecFileOptions(&opts, ctl.thread, filename, src, pred)
	if err != nil {
		ctl = nil
		return
	}

	input, ok := ctl.globals["input"].(starlark.Callable)
	if !ok {
		ctl = nil
		err = ErrScriptInput
		return
	}
	ctl.input = input

	output, ok := ctl.globals["output"].(starlark.Callable)
	if ok {
		ctl.output = output
	}

	return
}

// peek(address) returns the memory cell at address.
func (ctl *Controller) peek(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address int64
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "address", &address)
	if err != nil {
		return nil, err
	}

	value, err := ctl.Engine.Peek(address)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt64(value), nil
}

// poke(address, value) sets the memory cell at address.
func (ctl *Controller) poke(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address, value int64
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "address", &address, "value", &value)
	if err != nil {
		return nil, err
	}

	err = ctl.Engine.Poke(address, value)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

// toInt64 converts a Starlark int to int64.
func toInt64(value starlark.Value) (out int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrScriptValue(value.String())
		return
	}

	out, ok = st_int.Int64()
	if !ok {
		err = ErrScriptValue(value.String())
		return
	}

	return
}

// toInputs converts an input() result to the values to queue.
func toInputs(value starlark.Value) (inputs []int64, err error) {
	if _, ok := value.(starlark.Int); ok {
		var one int64
		one, err = toInt64(value)
		inputs = []int64{one}
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = ErrScriptValue(value.String())
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		var one int64
		one, err = toInt64(item)
		if err != nil {
			return
		}
		inputs = append(inputs, one)
	}

	return
}

// callInput asks the script for the next inputs.
func (ctl *Controller) callInput() (err error) {
	list := make([]starlark.Value, len(ctl.recent))
	for n, value := range ctl.recent {
		list[n] = starlark.MakeInt64(value)
	}

	rc, err := starlark.Call(ctl.thread, ctl.input, starlark.Tuple{starlark.NewList(list)}, nil)
	if err != nil {
		return &ErrCallback{Name: "input", Err: err}
	}

	inputs, err := toInputs(rc)
	if err != nil {
		return &ErrCallback{Name: "input", Err: err}
	}

	if ctl.Verbose {
		log.Printf("script: input(%v) = %v", ctl.recent, inputs)
	}

	if len(inputs) == 0 {
		// The engine would only ask again.
		return &ErrCallback{Name: "input", Err: ErrScriptValue(rc.String())}
	}

	ctl.Engine.AddInput(inputs...)
	ctl.recent = ctl.recent[:0]

	return
}

// callOutput reports an output to the script. keep is false if the script
// asked to stop.
func (ctl *Controller) callOutput(value int64) (keep bool, err error) {
	keep = true

	if ctl.output == nil {
		return
	}

	rc, err := starlark.Call(ctl.thread, ctl.output, starlark.Tuple{starlark.MakeInt64(value)}, nil)
	if err != nil {
		err = &ErrCallback{Name: "output", Err: err}
		return
	}

	if ctl.Verbose {
		log.Printf("script: output(%v) = %v", value, rc)
	}

	if rc == starlark.False {
		keep = false
	}

	return
}

// Run steps the engine until it halts or the script stops it, returning
// every output produced.
func (ctl *Controller) Run() (outputs []int64, err error) {
	for {
		var result intcode.Result
		var value int64
		result, value, err = ctl.Engine.Step()
		if err != nil {
			return
		}

		switch result {
		case intcode.RESULT_HALT:
			return
		case intcode.RESULT_INPUT:
			err = ctl.callInput()
			if err != nil {
				return
			}
		case intcode.RESULT_OUTPUT:
			outputs = append(outputs, value)
			ctl.recent = append(ctl.recent, value)
			var keep bool
			keep, err = ctl.callOutput(value)
			if err != nil || !keep {
				return
			}
		}
	}
}
