package engine

import (
	"testing"
	"unsafe"
)

func TestAlignedFloat64sAlignment(t *testing.T) {
	s := alignedFloat64s(17)
	if len(s) != 17 {
		t.Fatalf("len(alignedFloat64s(17)) = %d, want 17", len(s))
	}
	addr := uintptr(unsafe.Pointer(&s[0]))
	if addr%refAlignment != 0 {
		t.Errorf("alignedFloat64s base address %#x not aligned to %d bytes", addr, refAlignment)
	}
}

func TestAlignedFloat64sZeroLength(t *testing.T) {
	s := alignedFloat64s(0)
	if len(s) != 0 {
		t.Errorf("len(alignedFloat64s(0)) = %d, want 0", len(s))
	}
}
