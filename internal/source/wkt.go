package source

import (
	"errors"
	"strconv"
	"strings"

	"geoplot/geom"
)

// ParseWKT parses a subset of WKT: POINT(x y), MULTIPOINT(x y, ...),
// LINESTRING(x y, ...) and POLYGON((x y, ...), (...)) with the first ring
// outer and any following rings holes.
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		block, ok := parenBody(s, "(", ")")
		if !ok {
			return Data{}, errors.New("wkt point: invalid")
		}
		for _, p := range parseTuples(block) {
			d.AddPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		block, ok := parenBody(s, "(", ")")
		if !ok {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		if ls := parseTuples(block); len(ls) > 0 {
			d.AddLine(ls)
		}
	case strings.HasPrefix(up, "POLYGON"):
		block, ok := parenBody(s, "((", "))")
		if !ok {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		var rings [][]geom.Vec
		for _, part := range splitRings(block) {
			if pts := parseTuples(part); len(pts) > 0 {
				rings = append(rings, pts)
			}
		}
		if len(rings) > 0 {
			d.AddPolygon(rings)
		}
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// parenBody returns the text between the first open and the last close
// delimiter.
func parenBody(s, open, closing string) (string, bool) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, closing)
	if i < 0 || j <= i {
		return "", false
	}
	return s[i+len(open) : j], true
}

// splitRings splits a polygon body on ring separators, tolerating spaces
// around them.
func splitRings(body string) []string {
	body = strings.ReplaceAll(body, "), (", "),(")
	body = strings.ReplaceAll(body, ") , (", "),(")
	return strings.Split(body, "),(")
}

// parseTuples reads comma-separated "x y" pairs, skipping malformed ones.
func parseTuples(block string) []geom.Vec {
	var out []geom.Vec
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, geom.V(x, y))
	}
	return out
}
