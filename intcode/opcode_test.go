package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   int64
		op     Opcode
		mode   [3]Mode
		text   string
		width  int64
		target int
		err    error
	}){
		{1, OP_ADD, [3]Mode{}, "add.pos.pos.pos", 4, 2, nil},
		{1002, OP_MUL, [3]Mode{MODE_POSITION, MODE_IMMEDIATE}, "mul.pos.imm.pos", 4, 2, nil},
		{21101, OP_ADD, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}, "add.imm.imm.rel", 4, 2, nil},
		{3, OP_IN, [3]Mode{}, "in.pos", 2, 0, nil},
		{203, OP_IN, [3]Mode{MODE_RELATIVE}, "in.rel", 2, 0, nil},
		{104, OP_OUT, [3]Mode{MODE_IMMEDIATE}, "out.imm", 2, -1, nil},
		{1105, OP_JNZ, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}, "jnz.imm.imm", 3, -1, nil},
		{1206, OP_JZ, [3]Mode{MODE_RELATIVE, MODE_IMMEDIATE}, "jz.rel.imm", 3, -1, nil},
		{1107, OP_LT, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}, "lt.imm.imm.pos", 4, 2, nil},
		{8, OP_EQ, [3]Mode{}, "eq.pos.pos.pos", 4, 2, nil},
		{109, OP_ARB, [3]Mode{MODE_IMMEDIATE}, "arb.imm", 2, -1, nil},
		{99, OP_HALT, [3]Mode{}, "halt", 1, -1, nil},
		{399, OP_HALT, [3]Mode{}, "halt", 1, -1, nil}, // unused mode digits are ignored
		{0, 0, [3]Mode{}, "", 0, 0, ErrOpcodeInvalid},
		{98, 0, [3]Mode{}, "", 0, 0, ErrOpcodeInvalid},
		{-1, 0, [3]Mode{}, "", 0, 0, ErrOpcodeInvalid},
		{301, 0, [3]Mode{}, "", 0, 0, ErrModeInvalid},
		{11101, 0, [3]Mode{}, "", 0, 0, ErrWriteMode},
		{103, 0, [3]Mode{}, "", 0, 0, ErrWriteMode},
	}

	for _, entry := range table {
		ins, err := Decode(entry.word)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, "%d", entry.word)
			continue
		}
		assert.NoError(err, "%d", entry.word)
		assert.Equal(entry.op, ins.Op, "%d", entry.word)
		assert.Equal(entry.mode, ins.Mode, "%d", entry.word)
		assert.Equal(entry.text, ins.String(), "%d", entry.word)
		assert.Equal(entry.width, ins.Width(), "%d", entry.word)
		assert.Equal(entry.target, ins.Target(), "%d", entry.word)
	}
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(1002), Encode(OP_MUL, MODE_POSITION, MODE_IMMEDIATE))
	assert.Equal(int64(21101), Encode(OP_ADD, MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE))
	assert.Equal(int64(99), Encode(OP_HALT))

	for _, word := range []int64{1, 1002, 21101, 203, 104, 1105, 1206, 1107, 8, 109, 99} {
		ins, err := Decode(word)
		assert.NoError(err)
		assert.Equal(word, ins.Word())
	}
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("jnz", OP_JNZ.String())
	assert.Equal("Opcode(42)", Opcode(42).String())
	assert.False(Opcode(42).Valid())
	assert.Equal("rel", MODE_RELATIVE.String())
	assert.Equal("Mode(7)", Mode(7).String())
}
