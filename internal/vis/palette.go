package vis

// RGBf is a float colour with channels in [0,1].
type RGBf struct {
	R, G, B float32
}

func lerpRGBf(a, b RGBf, t float32) RGBf {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGBf{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

var Palette = struct {
	Gold  RGBf // fixed accent mixed into every particle draw
	Bases []RGBf
}{
	Gold: RGBf{R: 1.00, G: 0.84, B: 0.30},
	Bases: []RGBf{
		{R: 0.35, G: 0.85, B: 1.00}, // ice cyan
		{R: 0.80, G: 0.45, B: 1.00}, // violet
		{R: 1.00, G: 0.45, B: 0.30}, // ember
		{R: 0.40, G: 1.00, B: 0.60}, // jade
		{R: 1.00, G: 0.50, B: 0.75}, // rose
	},
}
