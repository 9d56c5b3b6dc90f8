// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/intcode/internal"
)

// Result is the observable event that ended a Step.
type Result int

const (
	RESULT_HALT   = Result(0) // halt
	RESULT_OUTPUT = Result(1) // output
	RESULT_INPUT  = Result(2) // input
)

func (result Result) String() string {
	switch result {
	case RESULT_HALT:
		return "halt"
	case RESULT_OUTPUT:
		return "output"
	case RESULT_INPUT:
		return "input"
	}
	return fmt.Sprintf("Result(%d)", int(result))
}

// Engine is the execution context of a single Intcode program.
type Engine struct {
	Verbose bool // Set to trace every executed instruction.

	Memory *Memory // Unified code and data tape.

	ip     int64
	base   int64
	input  internal.Queue[int64]
	halted bool
	fault  error
}

// NewEngine creates an engine whose memory is a copy of program.
func NewEngine(program []int64) (eng *Engine) {
	eng = &Engine{
		Memory: NewMemory(program),
	}

	return
}

// ParseEngine parses comma separated program text into a new engine.
func ParseEngine(text string) (eng *Engine, err error) {
	prog, err := ParseProgram(text)
	if err != nil {
		return
	}

	eng = NewEngine(prog)
	return
}

// Clone returns a deep copy of the engine. The copy shares no state with
// the original.
func (eng *Engine) Clone() *Engine {
	return &Engine{
		Verbose: eng.Verbose,
		Memory:  eng.Memory.Clone(),
		ip:      eng.ip,
		base:    eng.base,
		input:   eng.input.Clone(),
		halted:  eng.halted,
		fault:   eng.fault,
	}
}

// AddInput queues values for subsequent input instructions.
func (eng *Engine) AddInput(values ...int64) *Engine {
	eng.input.Push(values...)
	return eng
}

// Pending returns the number of queued, unconsumed input values.
func (eng *Engine) Pending() int {
	return eng.input.Len()
}

// Ip returns the address of the next instruction to execute.
func (eng *Engine) Ip() int64 {
	return eng.ip
}

// Base returns the relative base.
func (eng *Engine) Base() int64 {
	return eng.base
}

// Halted returns true once the program has executed a halt.
func (eng *Engine) Halted() bool {
	return eng.halted
}

// Poke writes memory directly, without decoding an instruction.
func (eng *Engine) Poke(address int64, value int64) error {
	return eng.Memory.Write(address, value)
}

// Peek reads memory directly, without decoding an instruction.
func (eng *Engine) Peek(address int64) (int64, error) {
	return eng.Memory.Read(address)
}

// String returns the engine state as a string.
func (eng *Engine) String() (text string) {
	state := "ready"
	switch {
	case eng.fault != nil:
		state = "fault"
	case eng.halted:
		state = "halted"
	}

	listing, _ := eng.Memory.Listing(eng.ip)

	text += fmt.Sprintf("% 7s: %v\n", "state", state)
	text += fmt.Sprintf("% 7s: %d %v\n", "ip", eng.ip, listing)
	text += fmt.Sprintf("% 7s: %d\n", "base", eng.base)
	text += fmt.Sprintf("% 7s: %v\n", "input", eng.input.Data)
	text += fmt.Sprintf("% 7s: %d\n", "memory", eng.Memory.Len())

	return
}

// Step executes instructions until the program produces an output, needs an
// input that has not been queued, or halts.
//
// On RESULT_OUTPUT, value is the output and the instruction pointer is past
// the output instruction. On RESULT_INPUT, the input instruction has not
// been consumed and will be retried by the next Step. Once halted, Step
// keeps returning RESULT_HALT without touching memory.
//
// Errors are fatal: the engine is left faulted and every further Step
// returns the same error.
func (eng *Engine) Step() (result Result, value int64, err error) {
	if eng.fault != nil {
		err = eng.fault
		return
	}

	defer func() {
		if err != nil {
			eng.fault = err
		}
	}()

	for !eng.halted {
		var done bool
		result, value, done, err = eng.execute()
		if err != nil || done {
			return
		}
	}

	result = RESULT_HALT
	return
}

// RunToHalt steps until the program halts, collecting every output.
// A program that needs more input than was queued fails with
// ErrInputStarved; the engine itself stays usable.
func (eng *Engine) RunToHalt() (outputs []int64, err error) {
	for {
		var result Result
		var value int64
		result, value, err = eng.Step()
		if err != nil {
			return
		}

		switch result {
		case RESULT_OUTPUT:
			outputs = append(outputs, value)
		case RESULT_INPUT:
			err = errors.Join(ErrInputStarved, ErrOpcode{Ip: eng.ip, Word: eng.Memory.Data[eng.ip]})
			return
		case RESULT_HALT:
			return
		}
	}
}

// Last runs to halt and returns only the final output, or zero when the
// program produced none.
func (eng *Engine) Last() (value int64, err error) {
	outputs, err := eng.RunToHalt()
	if err != nil {
		return
	}

	if len(outputs) > 0 {
		value = outputs[len(outputs)-1]
	}
	return
}

// param reads the value of parameter n of the instruction at ip.
func (eng *Engine) param(ins Instruction, n int) (value int64, err error) {
	raw, err := eng.Memory.Read(eng.ip + 1 + int64(n))
	if err != nil {
		return
	}

	switch ins.Mode[n] {
	case MODE_IMMEDIATE:
		value = raw
	case MODE_RELATIVE:
		value, err = eng.Memory.Read(eng.base + raw)
	default:
		value, err = eng.Memory.Read(raw)
	}
	return
}

// store writes value to the target parameter n of the instruction at ip.
func (eng *Engine) store(ins Instruction, n int, value int64) (err error) {
	raw, err := eng.Memory.Read(eng.ip + 1 + int64(n))
	if err != nil {
		return
	}

	switch ins.Mode[n] {
	case MODE_IMMEDIATE:
		err = ErrWriteMode
	case MODE_RELATIVE:
		err = eng.Memory.Write(eng.base+raw, value)
	default:
		err = eng.Memory.Write(raw, value)
	}
	return
}

// params reads the first count parameters of the instruction at ip.
func (eng *Engine) params(ins Instruction, count int) (values [3]int64, err error) {
	for n := range count {
		values[n], err = eng.param(ins, n)
		if err != nil {
			return
		}
	}
	return
}

// execute runs the single instruction at ip. done is set when the
// instruction ends the Step.
func (eng *Engine) execute() (result Result, value int64, done bool, err error) {
	ip := eng.ip
	word, err := eng.Memory.Read(ip)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Ip: ip, Word: word}, err)
		}
	}()

	ins, err := Decode(word)
	if err != nil {
		return
	}

	if eng.Verbose {
		listing, _ := eng.Memory.Listing(ip)
		log.Printf("intcode: %04d: %v (rb=%d)", ip, listing, eng.base)
	}

	next_ip := ip + ins.Width()

	switch ins.Op {
	case OP_HALT:
		eng.halted = true
		result = RESULT_HALT
		done = true
		return
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var arg [3]int64
		arg, err = eng.params(ins, 2)
		if err != nil {
			return
		}
		var output int64
		switch ins.Op {
		case OP_ADD:
			output = arg[0] + arg[1]
		case OP_MUL:
			output = arg[0] * arg[1]
		case OP_LT:
			if arg[0] < arg[1] {
				output = 1
			}
		case OP_EQ:
			if arg[0] == arg[1] {
				output = 1
			}
		}
		err = eng.store(ins, 2, output)
		if err != nil {
			return
		}
	case OP_IN:
		input, ok := eng.input.Peek()
		if !ok {
			// Don't advance to next IP.
			result = RESULT_INPUT
			done = true
			return
		}
		err = eng.store(ins, 0, input)
		if err != nil {
			return
		}
		eng.input.Pop()
	case OP_OUT:
		value, err = eng.param(ins, 0)
		if err != nil {
			return
		}
		result = RESULT_OUTPUT
		done = true
	case OP_JNZ, OP_JZ:
		var arg [3]int64
		arg, err = eng.params(ins, 2)
		if err != nil {
			return
		}
		if (arg[0] != 0) == (ins.Op == OP_JNZ) {
			next_ip = arg[1]
		}
	case OP_ARB:
		var delta int64
		delta, err = eng.param(ins, 0)
		if err != nil {
			return
		}
		eng.base += delta
	}

	eng.ip = next_ip

	return
}
