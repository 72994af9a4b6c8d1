package worlds

// Point is a position on the logical canvas.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Rect is an axis-aligned box. X/Y are the centre of the box, the same
// convention static bodies use on the canvas.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

func (r Rect) Left() float64   { return r.X - r.Width/2 }
func (r Rect) Right() float64  { return r.X + r.Width/2 }
func (r Rect) Top() float64    { return r.Y - r.Height/2 }
func (r Rect) Bottom() float64 { return r.Y + r.Height/2 }

// Intersects reports whether the two boxes overlap with a non-zero area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// FromEdges builds a Rect from its left/top corner and size.
func FromEdges(left, top, width, height float64) Rect {
	return Rect{X: left + width/2, Y: top + height/2, Width: width, Height: height}
}

// Background references the art drawn behind a world.
type Background struct {
	Key        string `yaml:"key" json:"key"`
	Path       string `yaml:"path" json:"path"`
	MobilePath string `yaml:"mobile_path,omitempty" json:"mobile_path,omitempty"`
}

// Structures are the static solids placed in a world: one pipe and a row of
// interactive blocks.
type Structures struct {
	Pipe   Rect   `yaml:"pipe" json:"pipe"`
	Blocks []Rect `yaml:"blocks" json:"blocks"`
}

// PortfolioWorld describes one résumé section rendered as a playable area.
type PortfolioWorld struct {
	ID         string      `yaml:"id" json:"id"`
	Title      string      `yaml:"title" json:"title"`
	Summary    string      `yaml:"summary" json:"summary"`
	Details    []string    `yaml:"details,omitempty" json:"details,omitempty"`
	Color      uint32      `yaml:"color" json:"color"`
	Position   Point       `yaml:"position" json:"position"`
	Background Background  `yaml:"background" json:"background"`
	Structures *Structures `yaml:"structures,omitempty" json:"structures,omitempty"`
}

// Select returns the world with the given id, falling back to the first
// world. ok is false only when the list is empty.
func Select(list []PortfolioWorld, id string) (PortfolioWorld, bool) {
	if len(list) == 0 {
		return PortfolioWorld{}, false
	}
	if id != "" {
		for _, w := range list {
			if w.ID == id {
				return w, true
			}
		}
	}
	return list[0], true
}

// IndexOf returns the position of id in list, or -1.
func IndexOf(list []PortfolioWorld, id string) int {
	for i, w := range list {
		if w.ID == id {
			return i
		}
	}
	return -1
}
