package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fontworld/font"
	"github.com/pterm/pterm"
)

func printFamilies(store *font.Store) {
	families := store.Families()
	if len(families) == 0 {
		pterm.Println("no font families")
		return
	}
	data := [][]string{
		{"Family", "Faces"},
	}
	for _, family := range families {
		data = append(data, []string{family, fmt.Sprintf("%d", len(store.Variants(family)))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printFaces lists the faces of one family, or of all families if family is empty.
func printFaces(store *font.Store, family string) {
	data := [][]string{
		{"ID", "Family", "Style", "Weight", "Stretch", "File", "Loaded"},
	}
	for i, info := range store.Faces() {
		if family != "" && !strings.EqualFold(family, info.Family) {
			continue
		}
		id := font.FaceID(i)
		loaded := ""
		if store.Loaded(id) {
			loaded = "✓"
		}
		data = append(data, []string{
			fmt.Sprintf("%d", id),
			info.Family,
			info.Style.String(),
			info.Weight.String(),
			info.Stretch.String(),
			fmt.Sprintf("%s[%d]", info.Path, info.Index),
			loaded,
		})
	}
	if len(data) == 1 {
		pterm.Println("no faces")
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printMetrics(face *font.Face) {
	pterm.Printf("units per em: %g, glyphs: %d\n", face.UnitsPerEm(), face.NumGlyphs())
	data := [][]string{
		{"Metric", "Em"},
	}
	for m := font.Ascender; m <= font.Descender; m++ {
		data = append(data, []string{m.String(), face.VerticalMetric(m).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	lines := [][]string{
		{"Line", "Thickness", "Position"},
		lineRow("strikethrough", face.Strikethrough),
		lineRow("underline", face.Underline),
		lineRow("overline", face.Overline),
	}
	pterm.DefaultTable.WithHasHeader().WithData(lines).Render()
}

func lineRow(name string, m font.LineMetrics) []string {
	return []string{name, m.Thickness.String(), m.Position.String()}
}
