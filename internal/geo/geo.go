package geo

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *BBox) extend(lon, lat float64, first bool) {
	if first {
		*b = BBox{MinX: lon, MinY: lat, MaxX: lon, MaxY: lat}
		return
	}
	if lon < b.MinX {
		b.MinX = lon
	}
	if lat < b.MinY {
		b.MinY = lat
	}
	if lon > b.MaxX {
		b.MaxX = lon
	}
	if lat > b.MaxY {
		b.MaxY = lat
	}
}

// Feature is one country boundary with its identity attributes.
// Geometry is read-only after load; the binding layer never touches it.
type Feature struct {
	Name       string
	RegionCode string           // two-letter code, e.g. "FR"
	Polygons   [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox       BBox
}

// Catalog is the static set of boundary features available for rendering.
type Catalog struct {
	Features []Feature
	BBox     BBox
}
