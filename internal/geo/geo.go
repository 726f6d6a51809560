// internal/geo/geo.go

// Package geo holds the pure numeric primitives the scorers are built on:
// cosine similarity over embedding vectors and great-circle distance over
// coordinates.
package geo

import (
	"math"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/models"
)

// EarthRadiusKm is the sphere radius used for Haversine distance.
const EarthRadiusKm = 6371.0

// CosineSimilarity returns the directional alignment of two vectors in
// [-1,1]. Vectors of different lengths are a precondition violation and
// fail the call. A zero vector has no direction; the similarity is
// reported as 0 rather than failing, since embedding providers can
// legitimately return degenerate vectors.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewVectorDimMismatchError(len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
