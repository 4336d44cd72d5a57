package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geoplot/internal/source"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

var knownExts = map[string]bool{
	".geojson": true,
	".json":    true,
	".csv":     true,
	".kml":     true,
	".wkt":     true,
}

// refreshDir repopulates the sidebar with loadable files from the working
// directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.log.Error().Err(err).Str("dir", m.cwd).Msg("read dir failed")
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !knownExts[ext] {
			continue
		}
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].(fileItem).title < items[j].(fileItem).title
	})
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a dataset and refits the view to it.
func (m *Model) loadPath(p string) {
	m.selPath = p
	d, err := source.Load(p)
	if err != nil {
		m.log.Error().Err(err).Str("path", p).Msg("load failed")
		m.status = "load error: " + err.Error()
		return
	}
	m.setData(d)
	m.log.Info().
		Str("path", p).
		Int("points", len(d.Points)).
		Int("lines", len(d.Lines)).
		Int("polygons", len(d.Polygons)).
		Msg("dataset loaded")
	m.status = "loaded: " + filepath.Base(p)
}
