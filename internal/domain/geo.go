package domain

// GeoPoint - GeoJSON-точка, координаты в порядке [lon, lat]
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lon, lat},
	}
}

// Equal сравнивает координаты поэлементно. Используется, чтобы не
// перезаписывать location при совпадающем результате геокодирования.
func (p GeoPoint) Equal(other GeoPoint) bool {
	if len(p.Coordinates) != len(other.Coordinates) {
		return false
	}
	for i := range p.Coordinates {
		if p.Coordinates[i] != other.Coordinates[i] {
			return false
		}
	}
	return true
}
