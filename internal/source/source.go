// Package source loads point, line and polygon datasets from the supported
// file formats and tracks the bounding box of everything it parses.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"geoplot/geom"
)

// Data is a loaded geometry set plus the extent of every vertex in it.
// HasBounds is false only for a Data with no vertices at all.
type Data struct {
	Points   []geom.Vec
	Lines    [][]geom.Vec
	Polygons [][][]geom.Vec // rings per polygon, first outer, following holes

	Bounds    geom.Box
	HasBounds bool
}

// grow extends the running bounding box with one vertex.
func (d *Data) grow(v geom.Vec) {
	if !d.HasBounds {
		d.Bounds = geom.FromPoint(v)
		d.HasBounds = true
		return
	}
	d.Bounds = d.Bounds.Insert(v)
}

func (d *Data) AddPoint(v geom.Vec) {
	d.Points = append(d.Points, v)
	d.grow(v)
}

func (d *Data) AddLine(ls []geom.Vec) {
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.grow(p)
	}
}

func (d *Data) AddPolygon(rings [][]geom.Vec) {
	d.Polygons = append(d.Polygons, rings)
	for _, ring := range rings {
		for _, p := range ring {
			d.grow(p)
		}
	}
}

func (d *Data) empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// Load reads a dataset, dispatching on the file extension.
func Load(path string) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(raw))
	default:
		return Data{}, fmt.Errorf("unsupported file type %q", ext)
	}
}
