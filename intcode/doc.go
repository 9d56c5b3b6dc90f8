// Package intcode implements the Intcode virtual machine and its program
// loader.
//
// An Engine owns a growable memory tape of 64-bit signed integers, an
// instruction pointer, a relative base and a queue of pending inputs. The
// caller drives it with Step, which runs until the program produces an
// output, needs an input that has not been queued, or halts. Every
// higher level pattern (run to completion, chained engines, interactive
// control) is a loop over Step.
//
// Engines hold no external resources. Clone makes an independent deep copy,
// which is O(memory size).
package intcode
