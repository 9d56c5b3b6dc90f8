package intcode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Program is a parsed Intcode memory image.
type Program []int64

// ParseProgram parses comma separated signed integers. Whitespace around
// the text and around each value is ignored.
func ParseProgram(text string) (prog Program, err error) {
	tokens := strings.Split(strings.TrimSpace(text), ",")

	prog = make(Program, 0, len(tokens))
	for n, token := range tokens {
		token = strings.TrimSpace(token)
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			err = ErrSyntax{
				Index: n,
				Token: token,
				Err:   errors.Join(ErrProgramMalformed, ErrParseNumber(token)),
			}
			prog = nil
			return
		}
		prog = append(prog, value)
	}

	return
}

// ReadProgram parses the entire content of r as a program.
func ReadProgram(r io.Reader) (prog Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return ParseProgram(string(data))
}

// String returns the program in its comma separated text form.
func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, value := range prog {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}

// Disassemble writes a listing of the program, one instruction per line.
// Cells that do not decode are listed as data.
func (prog Program) Disassemble(w io.Writer) (err error) {
	mem := &Memory{Data: prog}

	for address := int64(0); address < int64(mem.Len()); {
		text, width := mem.Listing(address)
		_, err = fmt.Fprintf(w, "%04d: %v\n", address, text)
		if err != nil {
			return
		}
		address += width
	}

	return
}

// at reads a cell without growing the tape.
func (mem *Memory) at(address int64) int64 {
	if address < 0 || address >= int64(len(mem.Data)) {
		return 0
	}
	return mem.Data[address]
}

// Listing renders the instruction at address, and returns the number of
// cells it occupies. Listing never grows the tape.
func (mem *Memory) Listing(address int64) (text string, width int64) {
	word := mem.at(address)
	ins, err := Decode(word)
	if err != nil {
		return fmt.Sprintf("%d", word), 1
	}

	words := []string{ins.Op.String()}
	for n := range ins.Params() {
		raw := mem.at(address + 1 + int64(n))
		words = append(words, ins.Mode[n].operand(raw))
	}

	return strings.Join(words, " "), ins.Width()
}
