package source

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"geoplot/geom"
)

// LoadKML extracts Point coordinates from a KML file
// (Placemark > Point > coordinates, at any nesting depth — Document and
// Folder wrappers included). KML coordinates are "lon,lat[,alt]"; altitude
// is ignored.
func LoadKML(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}

	var d Data
	dec := xml.NewDecoder(bytes.NewReader(raw))
	pointDepth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Point":
				pointDepth++
			case "coordinates":
				// only Point coordinates; LineString etc. carry them too
				if pointDepth == 0 {
					if err := dec.Skip(); err != nil {
						return Data{}, err
					}
					continue
				}
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return Data{}, err
				}
				addKMLCoordinates(&d, text)
			}
		case xml.EndElement:
			if t.Name.Local == "Point" && pointDepth > 0 {
				pointDepth--
			}
		}
	}
	if d.empty() {
		return Data{}, errors.New("kml: no points found")
	}
	return d, nil
}

// addKMLCoordinates parses a coordinates block, which may contain multiple
// space-separated "lon,lat[,alt]" tuples.
func addKMLCoordinates(d *Data, text string) {
	for _, tuple := range strings.Fields(text) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		d.AddPoint(geom.V(lon, lat))
	}
}
