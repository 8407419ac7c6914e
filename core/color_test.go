package core

import "testing"

func TestRGBBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"Zero alpha keeps destination", 0, dst},
		{"Negative alpha keeps destination", -1, dst},
		{"Full alpha takes source", 1, src},
		{"Half alpha", 0.5, RGB{100, 50, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dst.Blend(src, tt.alpha); got != tt.want {
				t.Errorf("Blend(%v, %f) = %v, want %v", src, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{0xe6, 0x29, 0x37}).Hex(); got != "#e62937" {
		t.Errorf("Hex() = %q, want %q", got, "#e62937")
	}
}

func TestRectXYWH(t *testing.T) {
	r := RectXYWH(64, 128, 32, 16)
	if r.Width() != 32 || r.Height() != 16 {
		t.Errorf("Expected 32x16, got %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); c != Pt(80, 136) {
		t.Errorf("Center() = %v, want (80,136)", c)
	}
}
