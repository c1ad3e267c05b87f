package color

import "testing"

func TestColorU8Hex(t *testing.T) {
	tests := []struct {
		c    ColorU8
		want string
	}{
		{RGB(18, 18, 18), "#121212"},
		{RGB(242, 245, 255), "#f2f5ff"},
		{RGB(0, 0, 0), "#000000"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorU8String(t *testing.T) {
	if got := RGB(1, 2, 3).String(); got != "rgb(1,2,3)" {
		t.Errorf("String() = %q, want %q", got, "rgb(1,2,3)")
	}
}
