package engine

import "testing"

func TestDispatchLevelString(t *testing.T) {
	cases := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestCurrentLevelIsSetAtInit(t *testing.T) {
	// Whatever build tags compiled, init() must have run and picked a
	// concrete level with a matching positive width.
	if CurrentWidth() <= 0 {
		t.Errorf("CurrentWidth() = %d, want > 0 after package init", CurrentWidth())
	}
	if CurrentName() == "" {
		t.Errorf("CurrentName() = %q, want non-empty after package init", CurrentName())
	}
}
