package draw

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		expected Color
		wantErr  bool
	}{
		{name: "long_form", hex: "#fbf8cc", expected: Color{R: 251, G: 248, B: 204}},
		{name: "short_form", hex: "#abc", expected: Color{R: 170, G: 187, B: 204}},
		{name: "black", hex: "#000000", expected: Color{}},
		{name: "missing_hash", hex: "fbf8cc", wantErr: true},
		{name: "garbage", hex: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	c := Color{R: 0x98, G: 0xf5, B: 0xe1}
	if got := c.Hex(); got != "#98f5e1" {
		t.Errorf("Hex() = %q", got)
	}
	if back := MustColor(c.Hex()); back != c {
		t.Errorf("round trip = %+v", back)
	}
}

func TestMustColor_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustColor("not a color")
}

func TestColor_Blend(t *testing.T) {
	base := Color{R: 10, G: 100, B: 200}
	white := Color{R: 255, G: 255, B: 255}

	near := func(a, b Color) bool {
		d := func(x, y uint8) int { return abs(int(x) - int(y)) }
		return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1
	}

	if got := base.Blend(white, 0); !near(got, base) {
		t.Errorf("Blend(0) = %+v, expected %+v", got, base)
	}
	if got := base.Blend(white, 1); !near(got, white) {
		t.Errorf("Blend(1) = %+v, expected white", got)
	}
}
