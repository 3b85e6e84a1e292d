package common

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports strict overlap; boxes that only share an edge do not
// intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Right() float64 { return r.X + r.Width }

