package vis

import (
	"math"
	"testing"
)

func TestGenerateExactCount(t *testing.T) {
	shapes := []Shape{ShapeTree, ShapeHeart, ShapeSphere, ShapeStar, ShapeFlower}
	counts := []int{0, 1, 17, 256}
	for _, s := range shapes {
		for _, n := range counts {
			pts := GeneratePoints(s, n, NewRand(42))
			if len(pts) != 3*n {
				t.Errorf("%s count=%d: got %d floats, want %d", s, n, len(pts), 3*n)
			}
		}
	}
}

func TestGenerateUnknownShapeFallsBack(t *testing.T) {
	bad := GeneratePoints(Shape(200), 50, NewRand(9))
	tree := GeneratePoints(ShapeTree, 50, NewRand(9))
	for i := range bad {
		if bad[i] != tree[i] {
			t.Fatalf("unknown shape should generate the tree, diverged at %d", i)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := GeneratePoints(ShapeStar, 100, NewRand(123))
	b := GeneratePoints(ShapeStar, 100, NewRand(123))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSphereShellRadiusBounds(t *testing.T) {
	const n = 5000
	pts := GeneratePoints(ShapeSphere, n, NewRand(77))
	minR, maxR := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x := float64(pts[i*3])
		y := float64(pts[i*3+1])
		z := float64(pts[i*3+2])
		r := math.Sqrt(x*x + y*y + z*z)
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	if minR < SphereShellMin-1e-4 {
		t.Errorf("min radius %v below shell band %v", minR, SphereShellMin)
	}
	if maxR > SphereShellMax+1e-4 {
		t.Errorf("max radius %v above shell band %v", maxR, SphereShellMax)
	}
}

func TestHeartThicknessFlattened(t *testing.T) {
	const n = 2000
	pts := GeneratePoints(ShapeHeart, n, NewRand(5))
	for i := 0; i < n; i++ {
		z := math.Abs(float64(pts[i*3+2]))
		if z > HeartThickness+1e-6 {
			t.Fatalf("heart z %v exceeds thickness %v", z, HeartThickness)
		}
	}
}

func TestTreeHeightRange(t *testing.T) {
	const n = 2000
	pts := GeneratePoints(ShapeTree, n, NewRand(11))
	lim := TreeHeight*0.5 + TreeJitter + 1e-6
	for i := 0; i < n; i++ {
		y := float64(pts[i*3+1])
		if y > lim || y < -lim {
			t.Fatalf("tree y %v outside [-%v, %v]", y, lim, lim)
		}
	}
}
