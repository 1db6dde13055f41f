package geo

// KmPerDegree is the length of one degree of latitude in kilometers.
const KmPerDegree = 111.32

// BoundingBox is an axis-aligned square around a center point. It is a
// deliberate approximation of a circular radius search: corners lie up to
// ~1.41x the radius from the center, and the longitude axis reuses the
// latitude degree length without cos(lat) compression.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Around converts radiusKm into a degree delta and spans it on both axes.
// Bounds are inclusive on both ends when applied.
func Around(lat, lng, radiusKm float64) BoundingBox {
	radiusDeg := radiusKm / KmPerDegree
	return BoundingBox{
		MinLat: lat - radiusDeg,
		MaxLat: lat + radiusDeg,
		MinLng: lng - radiusDeg,
		MaxLng: lng + radiusDeg,
	}
}

// Contains reports whether the point falls inside the box, boundary
// inclusive.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}
