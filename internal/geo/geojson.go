package geo

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// Property keys tried in order for feature identity. Natural Earth and
// most country datasets use one of these spellings.
var (
	nameKeys   = []string{"name", "NAME", "admin", "ADMIN"}
	regionKeys = []string{"iso_a2", "ISO_A2", "iso2", "ISO2"}
)

// LoadCatalog reads a GeoJSON FeatureCollection of country polygons.
// Features without polygon geometry or a display name are skipped.
func LoadCatalog(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Catalog{}, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses GeoJSON FeatureCollection bytes into a Catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, err
	}
	t, _ := raw["type"].(string)
	if t != "FeatureCollection" {
		return Catalog{}, errors.New("geojson: expected FeatureCollection, got " + t)
	}
	fs, ok := raw["features"].([]any)
	if !ok {
		return Catalog{}, errors.New("geojson: missing features array")
	}

	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	parseRing := func(v any) (ring [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ring = append(ring, pt)
			}
		}
		return ring, true
	}
	parsePolygon := func(v any) (poly [][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, r := range arr {
			if ring, ok := parseRing(r); ok {
				poly = append(poly, ring)
			}
		}
		return poly, true
	}

	prop := func(props map[string]any, keys []string) string {
		for _, k := range keys {
			if s, ok := props[k].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}

	var cat Catalog
	total := 0
	for _, fv := range fs {
		fm, ok := fv.(map[string]any)
		if !ok {
			continue
		}
		props, _ := fm["properties"].(map[string]any)
		g, ok := fm["geometry"].(map[string]any)
		if !ok {
			continue
		}
		var feat Feature
		feat.Name = prop(props, nameKeys)
		feat.RegionCode = prop(props, regionKeys)
		if feat.Name == "" {
			continue
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Polygon":
			if poly, ok := parsePolygon(g["coordinates"]); ok && len(poly) > 0 {
				feat.Polygons = append(feat.Polygons, poly)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, pv := range arr {
					if poly, ok := parsePolygon(pv); ok && len(poly) > 0 {
						feat.Polygons = append(feat.Polygons, poly)
					}
				}
			}
		}
		if len(feat.Polygons) == 0 {
			continue
		}
		first := true
		for _, poly := range feat.Polygons {
			for _, ring := range poly {
				for _, p := range ring {
					feat.BBox.extend(p[0], p[1], first)
					cat.BBox.extend(p[0], p[1], total == 0)
					first = false
					total++
				}
			}
		}
		cat.Features = append(cat.Features, feat)
	}
	if len(cat.Features) == 0 {
		return Catalog{}, errors.New("geojson: no country features found")
	}
	return cat, nil
}
