package systems

import (
	"math"

	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
)

// RayHit describes the nearest surface a ray touched.
type RayHit struct {
	Distance float64
	X, Y     float64
	NormalX  float64
	NormalY  float64
	Object   *resolv.Object
}

// candidates returns the objects carrying any of the tags whose cells touch
// the given rectangle. A temporary probe object is added to the space for
// the duration of the query.
func candidates(space *resolv.Space, x, y, w, h float64, tagList ...string) []*resolv.Object {
	if space == nil {
		return nil
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	probe := resolv.NewObject(x, y, w, h, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tagList...)
	if check == nil {
		return nil
	}
	if len(tagList) == 0 {
		return check.Objects
	}
	return check.ObjectsByTags(tagList...)
}

// RayCast casts a segment from (ox, oy) along (dx, dy) for maxDist pixels and
// reports the nearest object carrying any of the tags.
func RayCast(space *resolv.Space, ox, oy, dx, dy, maxDist float64, tagList ...string) (RayHit, bool) {
	length := math.Hypot(dx, dy)
	if length == 0 || maxDist <= 0 {
		return RayHit{}, false
	}
	dx /= length
	dy /= length
	ex, ey := ox+dx*maxDist, oy+dy*maxDist

	minX, maxX := math.Min(ox, ex), math.Max(ox, ex)
	minY, maxY := math.Min(oy, ey), math.Max(oy, ey)

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for _, o := range candidates(space, minX, minY, maxX-minX, maxY-minY, tagList...) {
		t, nx, ny, ok := raySlab(ox, oy, dx, dy, maxDist, o.X, o.Y, o.W, o.H)
		if !ok || t >= best.Distance {
			continue
		}
		best = RayHit{
			Distance: t,
			X:        ox + dx*t,
			Y:        oy + dy*t,
			NormalX:  nx,
			NormalY:  ny,
			Object:   o,
		}
		found = true
	}
	return best, found
}

// raySlab intersects a normalised ray with an axis aligned box. A ray that
// starts inside the box hits at distance 0 with the normal facing back along
// the ray.
func raySlab(ox, oy, dx, dy, maxDist, bx, by, bw, bh float64) (t, nx, ny float64, ok bool) {
	tMin, tMax := 0.0, maxDist
	nx, ny = -sign(dx), -sign(dy)
	enterAxis := -1

	for axis := 0; axis < 2; axis++ {
		o, d, lo, hi := ox, dx, bx, bx+bw
		if axis == 1 {
			o, d, lo, hi = oy, dy, by, by+bh
		}
		if d == 0 {
			if o < lo || o > hi {
				return 0, 0, 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
			enterAxis = axis
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, 0, 0, false
		}
	}

	switch enterAxis {
	case 0:
		ny = 0
	case 1:
		nx = 0
	default:
		// Started inside; report the dominant axis.
		if math.Abs(dx) >= math.Abs(dy) {
			ny = 0
		} else {
			nx = 0
		}
	}
	return tMin, nx, ny, true
}

// CircleOverlap reports whether a circle touches any object with the tags.
func CircleOverlap(space *resolv.Space, cx, cy, r float64, tagList ...string) bool {
	for _, o := range candidates(space, cx-r, cy-r, r*2, r*2, tagList...) {
		nearX := clamp(cx, o.X, o.X+o.W)
		nearY := clamp(cy, o.Y, o.Y+o.H)
		ddx, ddy := cx-nearX, cy-nearY
		if ddx*ddx+ddy*ddy <= r*r {
			return true
		}
	}
	return false
}

// OverlapsTag returns the objects with the tag whose bounds intersect obj.
// Touching edges do not count, so a body resting flush against a hazard or
// an enemy is not inside it.
func OverlapsTag(obj *resolv.Object, tag string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if overlaps(obj, o) {
			out = append(out, o)
		}
	}
	return out
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// spaceProber adapts a space to the ray queries brains use.
type spaceProber struct {
	space *resolv.Space
}

func (p spaceProber) Ray(ox, oy, dx, dy, maxDist float64) bool {
	_, hit := RayCast(p.space, ox, oy, dx, dy, maxDist, tags.ResolvSolid, tags.ResolvPlatform)
	return hit
}
