package main

import "testing"

func TestEchoRAMMirrorsWorkRAM(t *testing.T) {
	mem := NewMemory()
	mem.Write(0xC123, 0x42)

	if got := mem.Read(0xE123); got != 0x42 {
		t.Fatalf("Read(0xE123) = %#02x, want 0x42", got)
	}

	mem.Write(0xE200, 0x99)
	if got := mem.Read(0xC200); got != 0x99 {
		t.Fatalf("echo write not reflected: Read(0xC200) = %#02x, want 0x99", got)
	}
}

func TestUnusableRegionSyntheticByte(t *testing.T) {
	mem := NewMemory()
	for addr := uint32(0xFEA0); addr <= 0xFEFF; addr++ {
		n := byte(addr & 0xF0)
		want := n | (n >> 4)
		if got := mem.Read(uint16(addr)); got != want {
			t.Fatalf("Read(%#04x) = %#02x, want %#02x", addr, got, want)
		}
	}
}

func TestVRAMBankSelect(t *testing.T) {
	mem := NewMemory()
	mem.Write(0x8000, 0x11)
	mem.Write(0xFF4F, 0x01)
	mem.Write(0x8000, 0x22)

	mem.Write(0xFF4F, 0x00)
	if got := mem.Read(0x8000); got != 0x11 {
		t.Fatalf("bank 0 at 0x8000 = %#02x, want 0x11", got)
	}
	mem.Write(0xFF4F, 0x01)
	if got := mem.Read(0x8000); got != 0x22 {
		t.Fatalf("bank 1 at 0x8000 = %#02x, want 0x22", got)
	}
}

func TestVBKReadMask(t *testing.T) {
	mem := NewMemory()
	mem.Write(0xFF4F, 0x00)
	if got := mem.Read(0xFF4F); got != 0xFE {
		t.Fatalf("Read(0xFF4F) after select 0 = %#02x, want 0xFE", got)
	}
	mem.Write(0xFF4F, 0x01)
	if got := mem.Read(0xFF4F); got != 0xFF {
		t.Fatalf("Read(0xFF4F) after select 1 = %#02x, want 0xFF", got)
	}
}

func TestSVBKBankMapping(t *testing.T) {
	mem := NewMemory()

	cases := []struct {
		selector byte
		value    byte
	}{
		{2, 0xAA}, {3, 0xBB}, {7, 0xCC},
	}
	for _, c := range cases {
		mem.Write(0xFF70, c.selector)
		mem.Write(0xD000, c.value)
	}

	for _, c := range cases {
		mem.Write(0xFF70, c.selector)
		if got := mem.Read(0xD000); got != c.value {
			t.Fatalf("selector %d: Read(0xD000) = %#02x, want %#02x", c.selector, got, c.value)
		}
	}

	mem.Write(0xFF70, 0x00)
	mem.Write(0xD000, 0x55)
	mem.Write(0xFF70, 0x01)
	if got := mem.Read(0xD000); got != 0x55 {
		t.Fatalf("selectors 0 and 1 should alias the same bank: got %#02x, want 0x55", got)
	}
}

func TestInterruptPriorityOrder(t *testing.T) {
	mem := NewMemory()
	mem.Write(0xFFFF, 0x1F)
	mem.NotifyInterrupt(InterruptTimer)
	mem.NotifyInterrupt(InterruptVBlank)

	kind, ok := mem.NextPendingInterrupt()
	if !ok || kind != InterruptVBlank {
		t.Fatalf("NextPendingInterrupt() = (%v, %v), want (InterruptVBlank, true)", kind, ok)
	}

	mem.ClearInterrupt(InterruptVBlank)
	kind, ok = mem.NextPendingInterrupt()
	if !ok || kind != InterruptTimer {
		t.Fatalf("after clearing VBlank, NextPendingInterrupt() = (%v, %v), want (InterruptTimer, true)", kind, ok)
	}
}

func TestIFIEOnlyOccupyLow5Bits(t *testing.T) {
	mem := NewMemory()
	mem.Write(0xFF0F, 0xFF)
	mem.Write(0xFFFF, 0xFF)

	if mem.Read(0xFF0F) != 0x1F {
		t.Fatalf("expected IF bits 0..4 set and bits 5..7 clear, got %#02x", mem.Read(0xFF0F))
	}
	if mem.Read(0xFFFF) != 0x1F {
		t.Fatalf("expected IE bits 0..4 set and bits 5..7 clear, got %#02x", mem.Read(0xFFFF))
	}
}
