// Package draw contains shape primitives for any [image/draw.Image].
//
// Shapes are clipped to the destination image's bounds.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	bresenham(dst, x, y, x, y+h-1, c)
}

// Rectangle draws the outline of a rectangle. Max is exclusive, like [image.Rectangle].
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, rect.Dx(), c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, rect.Dx(), c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, rect.Dy(), c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, rect.Dy(), c)
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	var (
		r = clampRadius(rect, radius)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if rect.Empty() {
		return
	}
	HorizontalLine(dst, x+r, y, w-2*r, c)
	HorizontalLine(dst, x+r, y+h-1, w-2*r, c)
	VerticalLine(dst, x, y+r, h-2*r, c)
	VerticalLine(dst, x+w-1, y+r, h-2*r, c)
	roundedCorner(dst, x+r, y+r, r, 1, c)
	roundedCorner(dst, x+w-r-1, y+r, r, 2, c)
	roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(dst, x+r, y+h-r-1, r, 8, c)
}

// clampRadius limits radius to half the shortest side of rect.
func clampRadius(rect image.Rectangle, radius int) int {
	limit := rect.Dx()
	if rect.Dy() < limit {
		limit = rect.Dy()
	}
	limit /= 2
	switch {
	case radius < 0:
		return 0
	case radius > limit:
		return limit
	default:
		return radius
	}
}

// Box draws a filled rectangle. Max is exclusive, like [image.Rectangle].
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon().Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	var (
		r = clampRadius(rect, radius)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if rect.Empty() {
		return
	}
	Box(dst, image.Rect(x+r, y, x+w-r, y+h), c)
	filledRoundedCorner(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	filledRoundedCorner(dst, x+r, y+r, r, 2, h-2*r-1, c)
}

func roundedCorner(dst Image, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		}
	}
}

func filledRoundedCorner(dst Image, x0, y0, radius, quadrant, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			VerticalLine(dst, x0+x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0+y, y0-x, 2*x+1+delta, c)
		}

		if quadrant&2 != 0 {
			VerticalLine(dst, x0-x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// bresenham draws the line between (x1,y1) and (x2,y2). Steps before the line enters the
// destination bounds are skipped without drawing, and drawing stops once it has left them.
func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	r := dst.Bounds()

	// Drawing p1 -> p2 is equivalent to drawing p2 -> p1, so sort points in x-axis order.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy, sy := x2-x1, y2-y1, 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	switch {
	// Is line a point ?
	case dx == 0 && dy == 0:
		dst.Set(x1, y1, c)

	// Is line an horizontal ?
	case dy == 0:
		if y1 < r.Min.Y || y1 >= r.Max.Y {
			return
		}
		for x := max(x1, r.Min.X); x <= min(x2, r.Max.X-1); x++ {
			dst.Set(x, y1, c)
		}

	// Is line a vertical ?
	case dx == 0:
		if x1 < r.Min.X || x1 >= r.Max.X {
			return
		}
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := max(y1, r.Min.Y); y <= min(y2, r.Max.Y-1); y++ {
			dst.Set(x1, y, c)
		}

	// wider than high (or diagonal) ?
	case dx >= dy:
		e, n := dx, dx
		if k := r.Min.X - x1; k > 0 {
			if k > n {
				return
			}
			var m int
			m, e = skip(k, dy, dx)
			x1, y1 = x1+k, y1+sy*m
			n -= k
		}
		for ; n != 0; n-- {
			if x1 >= r.Max.X || outside(y1, sy, r.Min.Y, r.Max.Y) {
				return
			}
			dst.Set(x1, y1, c)
			x1++
			e -= 2 * dy
			if e < 0 {
				y1 += sy
				e += 2 * dx
			}
		}
		dst.Set(x2, y2, c)

	// higher than wide.
	default:
		e, n := dy, dy
		k := r.Min.Y - y1
		if sy < 0 {
			k = y1 - (r.Max.Y - 1)
		}
		if k > 0 {
			if k > n {
				return
			}
			var m int
			m, e = skip(k, dx, dy)
			x1, y1 = x1+m, y1+sy*k
			n -= k
		}
		for ; n != 0; n-- {
			if x1 >= r.Max.X || outside(y1, sy, r.Min.Y, r.Max.Y) {
				return
			}
			dst.Set(x1, y1, c)
			y1 += sy
			e -= 2 * dx
			if e < 0 {
				x1++
				e += 2 * dy
			}
		}
		dst.Set(x2, y2, c)
	}
}

// skip returns the minor axis steps taken in the first k major axis steps of a line, and the
// error term after them.
func skip(k, minor, major int) (steps, e int) {
	var (
		k64 = int64(k)
		n   = int64(minor)
		d   = int64(major)
		m   = (2*k64*n + d - 1) / (2 * d)
	)
	return int(m), int(d + 2*m*d - 2*k64*n)
}

// outside reports whether y moving in direction sy has passed the rows [minY, maxY).
func outside(y, sy, minY, maxY int) bool {
	if sy > 0 {
		return y >= maxY
	}
	return y < minY
}
