package source

import (
	"encoding/json"
	"errors"
	"os"

	"geoplot/geom"
)

// LoadGeoJSON reads a GeoJSON file. Supported geometries: Point,
// MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon, plain or
// wrapped in Feature / FeatureCollection.
func LoadGeoJSON(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Data{}, err
	}

	var d Data
	t, _ := doc["type"].(string)
	switch t {
	case "Feature":
		if g, ok := doc["geometry"].(map[string]any); ok {
			walkGeometry(&d, g)
		}
	case "FeatureCollection":
		if fs, ok := doc["features"].([]any); ok {
			for _, f := range fs {
				fm, ok := f.(map[string]any)
				if !ok {
					continue
				}
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeometry(&d, g)
				}
			}
		}
	default:
		walkGeometry(&d, doc)
	}
	if d.empty() {
		return Data{}, errors.New("geojson: no geometries found")
	}
	return d, nil
}

// walkGeometry dispatches one GeoJSON geometry object into d.
func walkGeometry(d *Data, g map[string]any) {
	switch gt, _ := g["type"].(string); gt {
	case "Point":
		if p, ok := jsonPosition(g["coordinates"]); ok {
			d.AddPoint(p)
		}
	case "MultiPoint":
		if pts, ok := jsonPositions(g["coordinates"]); ok {
			for _, p := range pts {
				d.AddPoint(p)
			}
		}
	case "LineString":
		if ls, ok := jsonPositions(g["coordinates"]); ok && len(ls) > 0 {
			d.AddLine(ls)
		}
	case "MultiLineString":
		if lss, ok := jsonPositionLists(g["coordinates"]); ok {
			for _, ls := range lss {
				if len(ls) > 0 {
					d.AddLine(ls)
				}
			}
		}
	case "Polygon":
		if rings, ok := jsonPositionLists(g["coordinates"]); ok && len(rings) > 0 {
			d.AddPolygon(rings)
		}
	case "MultiPolygon":
		if arr, ok := g["coordinates"].([]any); ok {
			for _, el := range arr {
				if rings, ok := jsonPositionLists(el); ok && len(rings) > 0 {
					d.AddPolygon(rings)
				}
			}
		}
	}
}

// jsonPosition decodes a GeoJSON position array [x, y, ...].
func jsonPosition(v any) (geom.Vec, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return geom.Vec{}, false
	}
	x, xok := a[0].(float64)
	y, yok := a[1].(float64)
	if !xok || !yok {
		return geom.Vec{}, false
	}
	return geom.V(x, y), true
}

func jsonPositions(v any) ([]geom.Vec, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var out []geom.Vec
	for _, el := range arr {
		if p, ok := jsonPosition(el); ok {
			out = append(out, p)
		}
	}
	return out, true
}

func jsonPositionLists(v any) ([][]geom.Vec, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var out [][]geom.Vec
	for _, el := range arr {
		if pts, ok := jsonPositions(el); ok {
			out = append(out, pts)
		}
	}
	return out, true
}
