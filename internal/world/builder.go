package world

// Builder assembles a map on a mutable scratch grid.
// Paint operations apply in call order; Build freezes a copy into a Map.
type Builder struct {
	width  int
	height int
	cells  []Code
}

// NewBuilder creates a width x height grid filled with one code.
func NewBuilder(width, height int, fill Code) *Builder {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Builder{
		width:  width,
		height: height,
		cells:  make([]Code, width*height),
	}
	for i := range b.cells {
		b.cells[i] = fill
	}
	return b
}

// Set paints one cell. Out-of-range cells are ignored.
func (b *Builder) Set(col, row int, c Code) *Builder {
	if col >= 0 && col < b.width && row >= 0 && row < b.height {
		b.cells[row*b.width+col] = c
	}
	return b
}

// Fill paints the half-open rectangle [x1, x2) x [y1, y2), clipped to the grid.
func (b *Builder) Fill(c Code, x1, y1, x2, y2 int) *Builder {
	x1, x2 = max(x1, 0), min(x2, b.width)
	y1, y2 = max(y1, 0), min(y2, b.height)
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			b.cells[y*b.width+x] = c
		}
	}
	return b
}

// Build returns an immutable map. The builder stays usable; later paint
// operations do not affect maps already built.
func (b *Builder) Build() (*Map, error) {
	if b.width == 0 || b.height == 0 {
		return nil, ErrEmptyMap
	}
	cells := make([]Code, len(b.cells))
	copy(cells, b.cells)
	return &Map{width: b.width, height: b.height, cells: cells}, nil
}
