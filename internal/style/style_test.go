package style

import "testing"

func TestSizeScales(t *testing.T) {
	cases := []struct {
		size      Size
		width     float64
		text      float64
		blur      int
		highlight float64
	}{
		{Small, 2, 12, 6, 15},
		{Medium, 3, 18, 10, 30},
		{Large, 5, 32, 20, 45},
	}
	for _, c := range cases {
		if got := c.size.LineWidth(); got != c.width {
			t.Errorf("%v.LineWidth() = %v, want %v", c.size, got, c.width)
		}
		if got := c.size.TextSize(); got != c.text {
			t.Errorf("%v.TextSize() = %v, want %v", c.size, got, c.text)
		}
		if got := c.size.BlurFactor(); got != c.blur {
			t.Errorf("%v.BlurFactor() = %v, want %v", c.size, got, c.blur)
		}
		if got := c.size.HighlightWidth(); got != c.highlight {
			t.Errorf("%v.HighlightWidth() = %v, want %v", c.size, got, c.highlight)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(40)
	if c.A != 40 || c.R != Red.R {
		t.Errorf("WithAlpha changed more than alpha: %v", c)
	}
	if Red.A != 255 {
		t.Errorf("WithAlpha mutated the palette: %v", Red)
	}
}
