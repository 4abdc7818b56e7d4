package pylist

import (
	"math"
	"testing"
)

func TestRepeatGrowth(t *testing.T) {
	if n, ok := repeatGrowth(2, 3); !ok || n != 4 {
		t.Errorf("repeatGrowth(2, 3) = %d, %v", n, ok)
	}
	if _, ok := repeatGrowth(2, math.MaxInt/2+2); ok {
		t.Error("repeatGrowth should report overflow")
	}
	if n, ok := repeatGrowth(0, math.MaxInt); !ok || n != 0 {
		t.Errorf("repeatGrowth(0, MaxInt) = %d, %v", n, ok)
	}
}

func TestRepeatEmptyHugeCount(t *testing.T) {
	if got := (&List{}).RepeatInPlace(math.MaxInt); got.Len() != 0 {
		t.Errorf("len = %d, want 0", got.Len())
	}
}
