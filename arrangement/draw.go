package arrangement

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// Draw renders the arrangement to a PNG: every line stroked across the view,
// each Kobon triangle filled with its own color and labeled. The view is the
// bounding box of the valid intersection points plus a 10% margin, so the
// interesting structure always fits regardless of the coefficients' scale.
func Draw(ls LineSet, tris []Triangle, path string, size int) error {
	tbl := Intersections(ls)
	pts := tbl.ValidPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(pts) == 0 {
		minX, minY, maxX, maxY = -10, -10, 10, 10
	}
	margin := 0.1 * math.Max(maxX-minX, maxY-minY)
	if margin == 0 {
		margin = 1
	}
	minX -= margin
	minY -= margin
	maxX += margin
	maxY += margin

	scale := (float64(size) - 2*drawPadding) / math.Max(maxX-minX, maxY-minY)
	c := gg.NewContext(size, size)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(size))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Triangles first so the lines stroke over them
	for idx, tr := range tris {
		v1, v2, v3 := tr.Vertices(tbl)
		c.MoveTo(v1.X, v1.Y)
		c.LineTo(v2.X, v2.Y)
		c.LineTo(v3.X, v3.Y)
		c.ClosePath()
		h := float64(idx) / math.Max(1, float64(len(tris)))
		r, g, b := hsv(300*h, 0.6, 0.9)
		c.SetRGBA(r, g, b, 0.5)
		c.Fill()
	}

	c.SetRGBA(0, 0, 0, 0.6)
	c.SetLineWidth(1.5 / scale)
	diag := math.Hypot(maxX-minX, maxY-minY)
	for _, l := range ls {
		l = l.Normalized()
		// Closest point to the origin plus the direction vector span the
		// visible segment; diag is always long enough to cross the view.
		px, py := -l.C*l.A, -l.C*l.B
		dx, dy := l.B, -l.A
		c.DrawLine(px-diag*dx, py-diag*dy, px+diag*dx, py+diag*dy)
		c.Stroke()
	}

	if err := c.SavePNG(path); err != nil {
		return err
	}
	return nil
}

// DrawToTerminal renders to a temp file and cats it inline. Debug only; works
// in iTerm2 and friends.
func DrawToTerminal(ls LineSet, tris []Triangle, size int) {
	path := fmt.Sprintf("%s/kobon_preview.png", os.TempDir())
	if err := Draw(ls, tris, path, size); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}

// hsv converts to RGB; h in degrees, s and v in [0, 1]. Enough of a color
// ramp to tell adjacent triangles apart.
func hsv(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
