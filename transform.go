package vpath

// Whole-path transforms. They touch drawable vertices only; EndPoly and
// Stop markers keep their coordinates.

// Translate moves every drawable vertex by (dx, dy).
func (p *Path) Translate(dx, dy float64) {
	if p.IsEmpty() {
		return
	}
	d := p.detach()
	for i := range d.data {
		if d.data[i].Cmd.IsVertex() {
			d.data[i].X += dx
			d.data[i].Y += dy
		}
	}
}

// TranslateSubpath moves the drawable vertices from index start up to the
// next Stop marker.
func (p *Path) TranslateSubpath(dx, dy float64, start int) {
	if start < 0 || start >= p.Len() {
		return
	}
	d := p.detach()
	for i := start; i < len(d.data); i++ {
		v := &d.data[i]
		if v.Cmd.IsStop() {
			break
		}
		if v.Cmd.IsVertex() {
			v.X += dx
			v.Y += dy
		}
	}
}

// Scale multiplies every drawable vertex by (sx, sy). With keepStartPos
// the scaling is about the minimum drawable x and y instead of the origin,
// so the path keeps its top-left position.
func (p *Path) Scale(sx, sy float64, keepStartPos bool) {
	if p.IsEmpty() {
		return
	}
	d := p.detach()

	var ox, oy float64
	if keepStartPos {
		first := true
		for _, v := range d.data {
			if !v.Cmd.IsVertex() {
				continue
			}
			if first || v.X < ox {
				ox = v.X
			}
			if first || v.Y < oy {
				oy = v.Y
			}
			first = false
		}
	}

	for i := range d.data {
		v := &d.data[i]
		if v.Cmd.IsVertex() {
			v.X = (v.X-ox)*sx + ox
			v.Y = (v.Y-oy)*sy + oy
		}
	}
}

// FlipX mirrors drawable vertices horizontally within [x1, x2].
func (p *Path) FlipX(x1, x2 float64) {
	if p.IsEmpty() {
		return
	}
	d := p.detach()
	for i := range d.data {
		if d.data[i].Cmd.IsVertex() {
			d.data[i].X = x2 - d.data[i].X + x1
		}
	}
}

// FlipY mirrors drawable vertices vertically within [y1, y2].
func (p *Path) FlipY(y1, y2 float64) {
	if p.IsEmpty() {
		return
	}
	d := p.detach()
	for i := range d.data {
		if d.data[i].Cmd.IsVertex() {
			d.data[i].Y = y2 - d.data[i].Y + y1
		}
	}
}

// ApplyMatrix transforms every drawable vertex with m.
func (p *Path) ApplyMatrix(m Transformer) {
	if p.IsEmpty() {
		return
	}
	d := p.detach()
	applyTransform(d.data, m)
}

func applyTransform(vs []Vertex, m Transformer) {
	for i := range vs {
		if vs[i].Cmd.IsVertex() {
			vs[i].X, vs[i].Y = m.Transform(vs[i].X, vs[i].Y)
		}
	}
}
