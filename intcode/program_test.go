package intcode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text     string
		expected Program
	}){
		{"99", Program{99}},
		{"1,0,0,0,99", Program{1, 0, 0, 0, 99}},
		{"  1, -2 ,3\n", Program{1, -2, 3}},
		{"\t104,1125899906842624,99\r\n", Program{104, 1125899906842624, 99}},
		{"+5,-0", Program{5, 0}},
	}

	for _, entry := range table {
		prog, err := ParseProgram(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.expected, prog, entry.text)
	}
}

func TestParseProgram_Malformed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		index int
		token string
	}){
		{"", 0, ""},
		{"1,2,", 2, ""},
		{"1,x,3", 1, "x"},
		{"1,2 3", 1, "2 3"},
		{"1.5", 0, "1.5"},
		{"99999999999999999999", 0, "99999999999999999999"},
	}

	for _, entry := range table {
		prog, err := ParseProgram(entry.text)
		assert.Nil(prog, entry.text)
		assert.ErrorIs(err, ErrProgramMalformed, entry.text)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.text) {
			assert.Equal(entry.index, syntax.Index, entry.text)
			assert.Equal(entry.token, syntax.Token, entry.text)
		}

		var number ErrParseNumber
		assert.True(errors.As(err, &number), entry.text)
	}

	_, err := ParseEngine("1,a")
	assert.ErrorIs(err, ErrProgramMalformed)
}

func TestReadProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := ReadProgram(strings.NewReader(quine + "\n"))
	assert.NoError(err)
	assert.Equal(16, len(prog))
	assert.Equal(quine, prog.String())
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program  string
		expected []string
	}){
		{"1002,4,3,4,33", []string{
			"0000: mul [4] 3 [4]",
			"0004: 33",
		}},
		{"109,-1,204,1,99", []string{
			"0000: arb -1",
			"0002: out [rb+1]",
			"0004: halt",
		}},
		{"3,9,8,9,10,9,4,9,99,-1,8", []string{
			"0000: in [9]",
			"0002: eq [9] [10] [9]",
			"0006: out [9]",
			"0008: halt",
			"0009: -1",
			"0010: eq [0] [0] [0]",
		}},
	}

	for _, entry := range table {
		prog, err := ParseProgram(entry.program)
		assert.NoError(err)

		buf := &bytes.Buffer{}
		err = prog.Disassemble(buf)
		assert.NoError(err)
		assert.Equal(strings.Join(entry.expected, "\n")+"\n", buf.String(), entry.program)
	}
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory([]int64{21107, 1, -2})

	text, width := mem.Listing(0)
	assert.Equal("lt 1 -2 [rb+0]", text)
	assert.Equal(int64(4), width)

	// Listing does not grow the tape.
	assert.Equal(3, mem.Len())

	text, width = mem.Listing(-4)
	assert.Equal("0", text)
	assert.Equal(int64(1), width)
}
