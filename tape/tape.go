// Package tape connects an Intcode engine to byte streams.
package tape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrTapeEnd = errors.New(f("tape input ended"))
)

// ErrTapeValue is an input word that is not an integer.
type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("'%v' is not a number", string(err))
}

// Tape serves an engine's input from a reader and its output to a writer.
//
// In ASCII mode, each input line is queued byte by byte including its
// newline, and outputs in 0..127 are written as characters. Other outputs,
// and every output in numeric mode, are written in decimal, one per line.
// In numeric mode each input line holds integers separated by commas or
// spaces.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool

	reader *bufio.Reader
}

// line reads the next input line, without its line ending.
func (tp *Tape) line() (text string, err error) {
	if tp.Input == nil {
		err = ErrTapeEnd
		return
	}

	if tp.reader == nil {
		tp.reader = bufio.NewReader(tp.Input)
	}

	text, err = tp.reader.ReadString('\n')
	if err == io.EOF && len(text) > 0 {
		err = nil
	}
	if errors.Is(err, io.EOF) {
		err = ErrTapeEnd
	}

	text = strings.TrimRight(text, "\r\n")
	return
}

// Receive reads one line of input into eng's queue.
func (tp *Tape) Receive(eng *intcode.Engine) (err error) {
	var text string
	for {
		text, err = tp.line()
		if err != nil {
			return
		}
		if tp.Ascii || len(strings.TrimSpace(text)) != 0 {
			break
		}
	}

	if tp.Ascii {
		for _, b := range []byte(text) {
			eng.AddInput(int64(b))
		}
		eng.AddInput('\n')
		return
	}

	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]int64, 0, len(words))
	for _, word := range words {
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = ErrTapeValue(word)
			return
		}
		values = append(values, value)
	}

	eng.AddInput(values...)
	return
}

// Send writes one output value.
func (tp *Tape) Send(value int64) (err error) {
	if tp.Output == nil {
		return
	}

	if tp.Ascii && value >= 0 && value < 128 {
		_, err = tp.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintf(tp.Output, "%d\n", value)
	return
}

// Run steps eng until it halts, reading input from and writing output to
// the tape.
func (tp *Tape) Run(eng *intcode.Engine) (err error) {
	for {
		var result intcode.Result
		var value int64
		result, value, err = eng.Step()
		if err != nil {
			return
		}

		switch result {
		case intcode.RESULT_HALT:
			return
		case intcode.RESULT_OUTPUT:
			err = tp.Send(value)
		case intcode.RESULT_INPUT:
			err = tp.Receive(eng)
			if errors.Is(err, ErrTapeEnd) {
				err = errors.Join(intcode.ErrInputStarved, err)
			}
		}
		if err != nil {
			return
		}
	}
}
