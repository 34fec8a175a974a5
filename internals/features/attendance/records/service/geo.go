// file: internals/features/attendance/records/service/geo.go
package service

import "math"

// Radius bumi rata-rata (meter), cukup akurat untuk geofence skala venue.
const earthRadiusMeters = 6371000.0

// DistanceMeters menghitung jarak great-circle (haversine) dua titik
// lat/lng derajat. Murni & deterministik; NaN masuk → NaN keluar,
// pemanggil yang harus guard input.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
