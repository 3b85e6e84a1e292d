package component

// Explosion is a short-lived cosmetic effect left where an enemy died.
type Explosion struct {
	X, Y     float64
	Size     float64
	Radius   float64
	Growth   float64
	Timer    int
	Lifetime int
}

// Step ages the effect by one tick; the ring grows up to twice Size.
func (x *Explosion) Step() {
	x.Timer++
	if x.Radius < x.Size*2 {
		x.Radius += x.Growth
		if x.Radius > x.Size*2 {
			x.Radius = x.Size * 2
		}
	}
}

func (x *Explosion) Finished() bool {
	return x.Timer >= x.Lifetime
}

// Fade is 1 at birth and 0 when finished.
func (x *Explosion) Fade() float64 {
	if x.Lifetime <= 0 {
		return 0
	}
	f := 1 - float64(x.Timer)/float64(x.Lifetime)
	if f < 0 {
		return 0
	}
	return f
}
