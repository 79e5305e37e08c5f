// Package polyline encodes and decodes the Google/OSRM polyline5
// algorithm used to compress a route's geometry into a single string.
//
// No example repository in the reference pack imports a polyline
// library (checked: no go-polyline / google-maps-services-go
// dependency anywhere), so this implements the published algorithm
// directly against the standard library rather than introducing an
// ungrounded dependency.
package polyline

// precision5 is OSRM's polyline precision factor (5 decimal digits).
const precision5 = 1e5

// Point is a decoded (lat, lon) pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Decode decodes an OSRM-style polyline5 string into an ordered list
// of points.
func Decode(encoded string) []Point {
	var points []Point
	index, lat, lon := 0, 0, 0

	for index < len(encoded) {
		var result, shift int
		for {
			b := int(encoded[index]) - 63
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		dlat := result >> 1
		if result&1 != 0 {
			dlat = ^dlat
		}
		lat += dlat

		result, shift = 0, 0
		for {
			b := int(encoded[index]) - 63
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		dlon := result >> 1
		if result&1 != 0 {
			dlon = ^dlon
		}
		lon += dlon

		points = append(points, Point{
			Lat: float64(lat) / precision5,
			Lon: float64(lon) / precision5,
		})
	}

	return points
}

// Encode encodes a list of points into an OSRM-style polyline5 string.
func Encode(points []Point) string {
	var buf []byte
	prevLat, prevLon := 0, 0

	for _, p := range points {
		lat := round(p.Lat * precision5)
		lon := round(p.Lon * precision5)

		buf = encodeSigned(buf, lat-prevLat)
		buf = encodeSigned(buf, lon-prevLon)

		prevLat, prevLon = lat, lon
	}

	return string(buf)
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func encodeSigned(buf []byte, v int) []byte {
	shifted := v << 1
	if v < 0 {
		shifted = ^shifted
	}
	for shifted >= 0x20 {
		buf = append(buf, byte((0x20|(shifted&0x1f))+63))
		shifted >>= 5
	}
	buf = append(buf, byte(shifted+63))
	return buf
}
