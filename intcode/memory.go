package intcode

import (
	"slices"
)

// MEMORY_LIMIT is the number of cells a tape may materialize.
const MEMORY_LIMIT = int64(1) << 26

// Memory is the unified code and data tape of an Engine.
//
// Addresses past the end read as zero, and any access grows the backing
// store to include the address. Memory never shrinks. Negative addresses,
// and addresses at or past MEMORY_LIMIT, are rejected with ErrAddress.
type Memory struct {
	Data []int64
}

// NewMemory returns a memory initialized with a copy of cells.
func NewMemory(cells []int64) *Memory {
	return &Memory{Data: slices.Clone(cells)}
}

// Len returns the number of materialized cells.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

// Grow extends the tape with zero cells so that address is materialized.
func (mem *Memory) Grow(address int64) (err error) {
	if address < 0 || address >= MEMORY_LIMIT {
		err = ErrAddress(address)
		return
	}

	if address >= int64(len(mem.Data)) {
		mem.Data = append(mem.Data, make([]int64, address+1-int64(len(mem.Data)))...)
	}

	return
}

// Read returns the cell at address.
func (mem *Memory) Read(address int64) (value int64, err error) {
	err = mem.Grow(address)
	if err != nil {
		return
	}

	value = mem.Data[address]
	return
}

// Write sets the cell at address.
func (mem *Memory) Write(address int64, value int64) (err error) {
	err = mem.Grow(address)
	if err != nil {
		return
	}

	mem.Data[address] = value
	return
}

// Clone returns an independent copy of the tape.
func (mem *Memory) Clone() *Memory {
	return NewMemory(mem.Data)
}
