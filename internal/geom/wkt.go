package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParsePolygonWKT parses a WKT POLYGON into a Polygon. Only the outer
// ring is used; inner rings (holes) are ignored. A closing vertex equal
// to the first is dropped, matching the WKT convention of repeating it.
func ParsePolygonWKT(wkt string) (Polygon, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Polygon{}, errors.New("empty wkt")
	}
	if !strings.HasPrefix(strings.ToUpper(s), "POLYGON") {
		return Polygon{}, errors.New("wkt: expected POLYGON")
	}
	i := strings.Index(s, "((")
	j := strings.LastIndex(s, "))")
	if i < 0 || j <= i {
		return Polygon{}, errors.New("wkt polygon: invalid")
	}
	rings := s[i+2 : j]
	// outer ring only: cut at the first ring separator
	if k := strings.Index(rings, ")"); k >= 0 {
		rings = rings[:k]
	}

	var pts []Point
	for _, tup := range strings.Split(rings, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	if len(pts) > 3 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return NewPolygon(pts...)
}
