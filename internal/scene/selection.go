package scene

import (
	"sort"

	"homogebra/internal/geom"
)

// Hit is an object returned by a selection query.
type Hit struct {
	Object   Object
	Distance float64
}

// Nearby returns the valid objects within radius of the Euclidean point
// (x, y), closest first. Ties are broken by kind, then name. Objects at
// infinity and degenerate constructions are never selected.
func (s *Scene) Nearby(x, y, radius float64) []Hit {
	var hits []Hit
	for _, o := range s.order {
		if !o.Valid() {
			continue
		}
		d, ok := distance(o.Equation(), x, y, s.eps)
		if !ok || d > radius {
			continue
		}
		hits = append(hits, Hit{Object: o, Distance: d})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Object.Kind() != b.Object.Kind() {
			return a.Object.Kind() < b.Object.Kind()
		}
		return a.Object.Name() < b.Object.Name()
	})
	return hits
}

// Nearest returns the closest object within radius.
func (s *Scene) Nearest(x, y, radius float64) (Hit, bool) {
	hits := s.Nearby(x, y, radius)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

func distance(eq geom.Equation, x, y, eps float64) (float64, bool) {
	switch e := eq.(type) {
	case geom.PointEquation:
		return geom.DistanceToPoint(x, y, e, eps)
	case geom.LineEquation:
		return geom.DistanceToLine(x, y, e, eps)
	case geom.ConicEquation:
		return geom.DistanceToConic(x, y, e, eps)
	}
	return 0, false
}
