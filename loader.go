// loader.go - cartridge-file loading, §6

package main

import (
	"fmt"
	"os"
)

// LoadROM reads the ROM image at path and writes its bytes into mem
// starting at address 0, per §6 (`for i,b in rom: memory.write(i, b)`).
// No header validation is performed; addresses beyond 0xFFFF are
// silently dropped since the address space cannot hold them.
func LoadROM(mem *Memory, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: reading ROM %q: %w", path, err)
	}
	for i, b := range data {
		if i > 0xFFFF {
			break
		}
		mem.Write(uint16(i), b)
	}
	return nil
}
