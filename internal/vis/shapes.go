package vis

import "math"

// Shape identifies one of the closed set of target point clouds.
type Shape uint8

const (
	ShapeTree Shape = iota
	ShapeHeart
	ShapeSphere
	ShapeStar
	ShapeFlower

	ShapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeTree:
		return "tree"
	case ShapeHeart:
		return "heart"
	case ShapeSphere:
		return "sphere"
	case ShapeStar:
		return "star"
	case ShapeFlower:
		return "flower"
	}
	return "tree"
}

// GeneratePoints samples count points on the given shape and returns them
// as interleaved x,y,z floats (length 3*count). Unknown shape values fall
// back to the tree. Deterministic for a given rng state.
func GeneratePoints(s Shape, count int, rng *Rand) []float32 {
	pts := make([]float32, 3*count)
	switch s {
	case ShapeHeart:
		genHeart(pts, count, rng)
	case ShapeSphere:
		genSphere(pts, count, rng)
	case ShapeStar:
		genStar(pts, count, rng)
	case ShapeFlower:
		genFlower(pts, count, rng)
	default:
		genTree(pts, count, rng)
	}
	return pts
}

// genTree traces a cone spiral: angle advances with the index fraction,
// radius widens toward the base while height drops.
func genTree(pts []float32, count int, rng *Rand) {
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count)
		angle := t * 2 * math.Pi * TreeTurns
		radius := TreeMaxRadius * t
		x := math.Cos(angle)*radius + rng.RangeF(-TreeJitter, TreeJitter)
		y := TreeHeight*0.5 - TreeHeight*t + rng.RangeF(-TreeJitter, TreeJitter)
		z := math.Sin(angle)*radius + rng.RangeF(-TreeJitter, TreeJitter)
		put3(pts, i, x, y, z)
	}
}

// genHeart area-fills the classic parametric heart curve, squashed on z.
func genHeart(pts []float32, count int, rng *Rand) {
	for i := 0; i < count; i++ {
		theta := rng.RangeF(0, 2*math.Pi)
		// sqrt keeps the fill roughly uniform over the interior.
		fill := math.Sqrt(rng.Float64())
		sx := 16 * math.Pow(math.Sin(theta), 3)
		sy := 13*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta)
		x := sx * HeartScale * fill
		y := sy * HeartScale * fill
		z := rng.RangeF(-HeartThickness, HeartThickness)
		put3(pts, i, x, y, z)
	}
}

// genSphere samples a thin shell with inverse-cosine latitude so points
// spread uniformly over the surface instead of clustering at the poles.
func genSphere(pts []float32, count int, rng *Rand) {
	for i := 0; i < count; i++ {
		theta := rng.RangeF(0, 2*math.Pi)
		phi := math.Acos(1 - 2*rng.Float64())
		r := rng.RangeF(SphereShellMin, SphereShellMax)
		x := r * math.Sin(phi) * math.Cos(theta)
		y := r * math.Cos(phi)
		z := r * math.Sin(phi) * math.Sin(theta)
		put3(pts, i, x, y, z)
	}
}

// genStar fills a spiked radial profile: a small core plus lobes that
// sharpen toward the spike tips.
func genStar(pts []float32, count int, rng *Rand) {
	for i := 0; i < count; i++ {
		theta := rng.RangeF(0, 2*math.Pi)
		lobe := 0.5 + 0.5*math.Cos(float64(StarLobes)*theta)
		rim := StarCoreR + StarSpikeR*lobe*lobe*lobe
		r := rim * math.Sqrt(rng.Float64())
		x := r * math.Cos(theta)
		y := r * math.Sin(theta)
		z := rng.RangeF(-StarThickness, StarThickness)
		put3(pts, i, x, y, z)
	}
}

// genFlower fills a rose curve r = rMax*cos(k*theta). Negative radii land
// on the opposite lobe, which is part of the intended petal texture.
// Height follows the squared radius so petals curl upward at the rim.
func genFlower(pts []float32, count int, rng *Rand) {
	for i := 0; i < count; i++ {
		theta := rng.RangeF(0, 2*math.Pi)
		r := FlowerMaxRadius * math.Cos(FlowerPetalK*theta) * rng.Float64()
		x := r * math.Cos(theta)
		y := FlowerCurl * (r * r / FlowerMaxRadius)
		z := r * math.Sin(theta)
		put3(pts, i, x, y, z)
	}
}

func put3(pts []float32, i int, x, y, z float64) {
	pts[i*3] = float32(x)
	pts[i*3+1] = float32(y)
	pts[i*3+2] = float32(z)
}
