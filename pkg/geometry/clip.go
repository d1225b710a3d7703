package geometry

// KeepSide selects which side of an axis-aligned clip line survives a pass:
// KeepGE keeps vertices with the clipped coordinate >= the line, KeepLE
// keeps <=.
type KeepSide int

const (
	KeepGE KeepSide = iota
	KeepLE
)

func keepX(p Point, xLine float64, side KeepSide) bool {
	if side == KeepGE {
		return p.X >= xLine
	}
	return p.X <= xLine
}

func keepY(p Point, yLine float64, side KeepSide) bool {
	if side == KeepGE {
		return p.Y >= yLine
	}
	return p.Y <= yLine
}

// ClipAxisX runs one Sutherland-Hodgman pass of in against the vertical
// line x = xLine, writing the result into out (which may alias neither
// in.Pts nor be in itself - callers ping-pong between two distinct buffers).
// This is the same current/next inside-test-and-emit loop as a general
// polygon-polygon clip, specialized to an axis-aligned edge: the
// intersection is a plain linear interpolation instead of a general line
// intersection.
func ClipAxisX(in Polygon, xLine float64, side KeepSide, out *Polygon) {
	out.reset()
	if in.N == 0 {
		return
	}
	cur := in.Pts[in.N-1]
	curIn := keepX(cur, xLine, side)
	for i := 0; i < in.N; i++ {
		next := in.Pts[i]
		nextIn := keepX(next, xLine, side)
		switch {
		case nextIn && curIn:
			out.push(next)
		case nextIn && !curIn:
			out.push(intersectX(cur, next, xLine))
			out.push(next)
		case !nextIn && curIn:
			out.push(intersectX(cur, next, xLine))
		}
		cur, curIn = next, nextIn
	}
}

// ClipAxisY is ClipAxisX's horizontal-line counterpart.
func ClipAxisY(in Polygon, yLine float64, side KeepSide, out *Polygon) {
	out.reset()
	if in.N == 0 {
		return
	}
	cur := in.Pts[in.N-1]
	curIn := keepY(cur, yLine, side)
	for i := 0; i < in.N; i++ {
		next := in.Pts[i]
		nextIn := keepY(next, yLine, side)
		switch {
		case nextIn && curIn:
			out.push(next)
		case nextIn && !curIn:
			out.push(intersectY(cur, next, yLine))
			out.push(next)
		case !nextIn && curIn:
			out.push(intersectY(cur, next, yLine))
		}
		cur, curIn = next, nextIn
	}
}

func intersectX(a, b Point, xLine float64) Point {
	t := (xLine - a.X) / (b.X - a.X)
	return Point{X: xLine, Y: a.Y + t*(b.Y-a.Y)}
}

func intersectY(a, b Point, yLine float64) Point {
	t := (yLine - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: yLine}
}

// ClipToCell runs the four-pass rectangle clip described for the 2D
// splitter's general path: keep right of x=i, keep below y=j+1, keep left
// of x=i+1, keep above y=j. a and b are scratch buffers the caller owns;
// the final clipped polygon is returned by value as a copy of b (Pts is an
// array, not a slice), so both buffers may be reused right away.
func ClipToCell(subject Polygon, i, j int, a, b *Polygon) Polygon {
	lo := float64(i)
	hiX := float64(i + 1)
	hiY := float64(j + 1)
	loY := float64(j)

	ClipAxisX(subject, lo, KeepGE, a)
	ClipAxisY(*a, hiY, KeepLE, b)
	ClipAxisX(*b, hiX, KeepLE, a)
	ClipAxisY(*a, loY, KeepGE, b)
	return *b
}
