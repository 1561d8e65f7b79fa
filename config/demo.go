// config/demo.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

// Demo returns a small self-contained config package describing a single
// fictional aerodrome, DEMO, with two stop bars across one taxiway. It
// is used when no config mapping is available.
func Demo() *Config {
	geo := func(lat, lon float32) GeoPoint {
		return GeoPoint{Geo: Geo{Lat: lat, Lon: lon}}
	}
	bar := func(lat float32) NodeDisplay[GeoPoint] {
		line := []GeoPoint{geo(lat, -0.4620), geo(lat, -0.4600)}
		return NodeDisplay[GeoPoint]{
			Off:      []Path[GeoPoint]{{Points: line, Style: 0}},
			On:       []Path[GeoPoint]{{Points: line, Style: 1}},
			Selected: []Path[GeoPoint]{{Points: line, Style: 2}},
			Target: Target[GeoPoint]{Points: []GeoPoint{
				geo(lat-0.0002, -0.4622), geo(lat-0.0002, -0.4598),
				geo(lat+0.0002, -0.4598), geo(lat+0.0002, -0.4622),
			}},
		}
	}
	viewBar := func(y float32) NodeDisplay[Point] {
		line := []Point{{X: 20, Y: y}, {X: 80, Y: y}}
		return NodeDisplay[Point]{
			Off:      []Path[Point]{{Points: line, Style: 0}},
			On:       []Path[Point]{{Points: line, Style: 1}},
			Selected: []Path[Point]{{Points: line, Style: 2}},
			Target: Target[Point]{Points: []Point{
				{X: 18, Y: y - 3}, {X: 82, Y: y - 3}, {X: 82, Y: y + 3}, {X: 18, Y: y + 3},
			}},
		}
	}

	return &Config{
		Name:    "demo",
		Version: "1",
		Aerodromes: []Aerodrome{{
			ICAO: "DEMO",
			Nodes: []Node{
				{ID: "A1", Parent: -1, Display: bar(51.4700)},
				{ID: "A2", Parent: -1, Display: bar(51.4710)},
			},
			Profiles: []Profile{
				{
					ID:   "normal",
					Name: "Normal",
					Nodes: []NodeCondition{
						{Kind: NodeDirect, ResetSecs: 45},
						{Kind: NodeDirect},
					},
					Presets: []Preset{
						{Name: "All on", Nodes: []PresetNode{{Node: 0, On: true}, {Node: 1, On: true}}},
						{Name: "All off", Nodes: []PresetNode{{Node: 0, On: false}, {Node: 1, On: false}}},
					},
				},
				{
					ID:   "lvp",
					Name: "Low visibility",
					Nodes: []NodeCondition{
						{Kind: NodeFixed, Fixed: true},
						{Kind: NodeDirect},
					},
				},
			},
			Maps: []Map{{
				Background: Color{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
				Base: []Path[Point]{
					{Points: []Point{{X: 50, Y: 0}, {X: 50, Y: 100}}, Style: 3},
				},
				Nodes: []NodeDisplay[Point]{viewBar(40), viewBar(60)},
			}},
			Views: []View{
				{Name: "Whole aerodrome", Map: 0, Bounds: Box{Max: Point{X: 100, Y: 100}}},
				{Name: "North", Map: 0, Bounds: Box{Max: Point{X: 100, Y: 50}}},
			},
			Styles: []Style{
				{StrokeWidth: 2, StrokeColor: Color{R: 0x40, G: 0x40, B: 0x40, A: 0xff}},
				{StrokeWidth: 3, StrokeColor: Color{R: 0xff, A: 0xff}},
				{StrokeWidth: 3, StrokeColor: Color{R: 0xff, G: 0xff, A: 0xff}},
				{StrokeWidth: 8, StrokeColor: Color{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
					FillStyle: FillSolid, FillColor: Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff}},
			},
		}},
	}
}
