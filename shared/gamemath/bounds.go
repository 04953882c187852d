package gamemath

// BoundingBox is the axis-aligned rectangle a unit occupies.
type BoundingBox struct {
	X1, Y1 float64
	X2, Y2 float64
}

// BoxAt derives the box for a unit at position with the given size.
func BoxAt(position Vector, width, height float64) BoundingBox {
	return BoundingBox{
		X1: position.X,
		Y1: position.Y,
		X2: position.X + width,
		Y2: position.Y + height,
	}
}

func (b BoundingBox) Width() float64  { return b.X2 - b.X1 }
func (b BoundingBox) Height() float64 { return b.Y2 - b.Y1 }

// Overlaps reports whether the boxes share any area. Touching edges do not count.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.X1 < o.X2 && b.X2 > o.X1 && b.Y1 < o.Y2 && b.Y2 > o.Y1
}

// Inside reports whether b lies entirely within o.
func (b BoundingBox) Inside(o BoundingBox) bool {
	return b.X1 >= o.X1 && b.Y1 >= o.Y1 && b.X2 <= o.X2 && b.Y2 <= o.Y2
}
