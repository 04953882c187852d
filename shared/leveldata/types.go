// Package leveldata parses obstacle courses from TMX files.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// Course is an ordered list of obstacle gaps, in game units.
type Course struct {
	Name string
	Gaps []Gap

	// Map size in game units (one tile = one unit)
	Width  float64
	Height float64
}

// Gap is the opening between a top and bottom obstacle.
type Gap struct {
	Top    float64
	Height float64
}

// Len returns the number of gaps in the course.
func (c *Course) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Gaps)
}

// At returns the i-th gap, wrapping around so a course loops forever.
func (c *Course) At(i int) (Gap, bool) {
	if c.Len() == 0 {
		return Gap{}, false
	}
	i %= len(c.Gaps)
	if i < 0 {
		i += len(c.Gaps)
	}
	return c.Gaps[i], true
}
