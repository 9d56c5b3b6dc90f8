package intcode

import (
	"fmt"
	"strings"
)

// Opcode is the instruction selector in the two low decimal digits of an
// instruction word.
type Opcode int64

const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JNZ  = Opcode(5)  // jnz
	OP_JZ   = Opcode(6)  // jz
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// opcodeInfo describes the operands of each opcode. target is the index of
// the parameter written by the instruction, or -1.
var opcodeInfo = map[Opcode](struct {
	name   string
	params int
	target int
}){
	OP_ADD:  {"add", 3, 2},
	OP_MUL:  {"mul", 3, 2},
	OP_IN:   {"in", 1, 0},
	OP_OUT:  {"out", 1, -1},
	OP_JNZ:  {"jnz", 2, -1},
	OP_JZ:   {"jz", 2, -1},
	OP_LT:   {"lt", 3, 2},
	OP_EQ:   {"eq", 3, 2},
	OP_ARB:  {"arb", 1, -1},
	OP_HALT: {"halt", 0, -1},
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() (ok bool) {
	_, ok = opcodeInfo[op]
	return
}

func (op Opcode) String() string {
	info, ok := opcodeInfo[op]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int64(op))
	}
	return info.name
}

// Mode is the addressing mode of a single instruction parameter.
type Mode int64

const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

func (mode Mode) String() string {
	switch mode {
	case MODE_POSITION:
		return "pos"
	case MODE_IMMEDIATE:
		return "imm"
	case MODE_RELATIVE:
		return "rel"
	}
	return fmt.Sprintf("Mode(%d)", int64(mode))
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op   Opcode
	Mode [3]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
//
// Mode digits beyond the opcode's parameter count are ignored. A write
// target decoded in immediate mode is rejected here, before any operand is
// touched.
func Decode(word int64) (ins Instruction, err error) {
	if word < 0 {
		err = ErrOpcodeInvalid
		return
	}

	ins.Op = Opcode(word % 100)
	if !ins.Op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	modes := word / 100
	for n := range ins.Params() {
		mode := Mode(modes % 10)
		modes /= 10
		switch mode {
		case MODE_POSITION, MODE_RELATIVE:
		case MODE_IMMEDIATE:
			if n == ins.Target() {
				err = ErrWriteMode
				return
			}
		default:
			err = ErrModeInvalid
			return
		}
		ins.Mode[n] = mode
	}

	return
}

// Encode is the inverse of Decode. Missing modes are MODE_POSITION.
func Encode(op Opcode, modes ...Mode) (word int64) {
	word = int64(op)
	scale := int64(100)
	for _, mode := range modes {
		word += scale * int64(mode)
		scale *= 10
	}
	return
}

// Params returns the number of parameters following the instruction word.
func (ins Instruction) Params() int {
	return opcodeInfo[ins.Op].params
}

// Target returns the index of the parameter the instruction writes, or -1.
func (ins Instruction) Target() int {
	info, ok := opcodeInfo[ins.Op]
	if !ok {
		return -1
	}
	return info.target
}

// Width returns the number of cells occupied by the instruction.
func (ins Instruction) Width() int64 {
	return int64(1 + ins.Params())
}

// Word re-encodes the instruction.
func (ins Instruction) Word() int64 {
	return Encode(ins.Op, ins.Mode[:ins.Params()]...)
}

// String returns the mnemonic with its parameter modes, ie "add.pos.imm.rel".
func (ins Instruction) String() string {
	words := []string{ins.Op.String()}
	for n := range ins.Params() {
		words = append(words, ins.Mode[n].String())
	}
	return strings.Join(words, ".")
}

// operand formats a raw parameter value according to its mode.
func (mode Mode) operand(raw int64) string {
	switch mode {
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%d", raw)
	case MODE_RELATIVE:
		return fmt.Sprintf("[rb%+d]", raw)
	default:
		return fmt.Sprintf("[%d]", raw)
	}
}
