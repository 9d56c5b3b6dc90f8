// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/pipeline"
	"github.com/ezrec/intcode/script"
	"github.com/ezrec/intcode/tape"
)

// parseValues parses a comma separated list of integers.
func parseValues(text string) (values []int64, err error) {
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	prog, err := intcode.ParseProgram(text)
	if err != nil {
		return
	}

	values = prog
	return
}

// parsePokes parses a comma separated list of address=value pairs.
func parsePokes(text string) (pokes [][2]int64, err error) {
	for _, pair := range strings.Split(text, ",") {
		pair = strings.TrimSpace(pair)
		if len(pair) == 0 {
			continue
		}
		addr, value, ok := strings.Cut(pair, "=")
		if !ok {
			err = fmt.Errorf("%v: expected address=value", pair)
			return
		}
		var poke [2]int64
		poke[0], err = strconv.ParseInt(strings.TrimSpace(addr), 10, 64)
		if err != nil {
			return
		}
		poke[1], err = strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return
		}
		pokes = append(pokes, poke)
	}

	return
}

// pipelineSignal picks the signal fed to the first pipeline stage.
// At most one -i value is accepted; the default is zero.
func pipelineSignal(inputs []int64) (signal int64, err error) {
	switch len(inputs) {
	case 0:
	case 1:
		signal = inputs[0]
	default:
		err = fmt.Errorf("%v: pipeline takes at most one initial signal", inputs)
	}

	return
}

func main() {
	var program string
	var input string
	var poke string
	var phases string
	var starlark string
	var disassemble bool
	var ascii bool
	var verbose bool

	flag.StringVar(&program, "p", "", "Intcode program file ('-' for stdin)")
	flag.StringVar(&input, "i", "", "Comma separated inputs to queue (with -phases, the single initial signal)")
	flag.StringVar(&poke, "poke", "", "Comma separated address=value memory patches")
	flag.StringVar(&phases, "phases", "", "Comma separated phase settings; run as a feedback pipeline")
	flag.StringVar(&starlark, "s", "", "Starlark controller script")
	flag.BoolVar(&disassemble, "d", false, "Disassemble, do not execute")
	flag.BoolVar(&ascii, "a", false, "ASCII tape mode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(program) == 0 {
		log.Fatalf("%v: -p program required", os.Args[0])
	}

	inf := os.Stdin
	if program != "-" {
		var err error
		inf, err = os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()
	}

	prog, err := intcode.ReadProgram(inf)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if disassemble {
		err = prog.Disassemble(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	eng := intcode.NewEngine(prog)
	eng.Verbose = verbose

	pokes, err := parsePokes(poke)
	if err != nil {
		log.Fatalf("-poke: %v", err)
	}
	for _, pair := range pokes {
		err = eng.Poke(pair[0], pair[1])
		if err != nil {
			log.Fatalf("-poke: %v", err)
		}
	}

	inputs, err := parseValues(input)
	if err != nil {
		log.Fatalf("-i: %v", err)
	}

	switch {
	case len(phases) != 0:
		settings, err := parseValues(phases)
		if err != nil {
			log.Fatalf("-phases: %v", err)
		}
		pipe := pipeline.FromPhases(eng, settings...)
		pipe.Verbose = verbose
		signal, err := pipelineSignal(inputs)
		if err != nil {
			log.Fatalf("-i: %v", err)
		}
		signal, err = pipe.Run(signal)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(signal)
	case len(starlark) != 0:
		src, err := os.ReadFile(starlark)
		if err != nil {
			log.Fatalf("%v: %v", starlark, err)
		}
		ctl, err := script.NewController(eng.AddInput(inputs...), starlark, src)
		if err != nil {
			log.Fatalf("%v: %v", starlark, err)
		}
		ctl.Verbose = verbose
		outputs, err := ctl.Run()
		for _, value := range outputs {
			fmt.Println(value)
		}
		if err != nil {
			log.Fatal(err)
		}
	default:
		tp := &tape.Tape{
			Input:  os.Stdin,
			Output: os.Stdout,
			Ascii:  ascii,
		}
		if program == "-" {
			tp.Input = nil
		}
		err = tp.Run(eng.AddInput(inputs...))
		if err != nil {
			log.Fatal(err)
		}
	}
}
