package glacier

import (
	"fmt"
	"math"
	"strconv"
)

// Score100 converts a 0..1 score to a whole number out of 100. Halves round up.
func Score100(score float64) int {
	return int(math.Floor(score*100 + 0.5))
}

// Percent renders a 0..1 score as a rounded percentage, e.g. 0.78 -> "78%".
func Percent(score float64) string {
	return strconv.Itoa(Score100(score)) + "%"
}

// Number renders v with the fewest digits that round-trip, e.g. 12.4 -> "12.4".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatArea renders square kilometres, e.g. 12.4 -> "12.4 km²".
func FormatArea(km2 float64) string {
	return Number(km2) + " km²"
}

// FormatAnomaly renders a temperature anomaly with an explicit sign.
func FormatAnomaly(celsius float64) string {
	if celsius < 0 {
		return Number(celsius) + "°C"
	}
	return "+" + Number(celsius) + "°C"
}

// FormatElevation renders metres above sea level, e.g. 4700 -> "4700m".
func FormatElevation(meters int) string {
	return strconv.Itoa(meters) + "m"
}

// FormatFlow renders a discharge in cubic metres per second.
func FormatFlow(m3s float64) string {
	return Number(m3s) + " m³/s"
}

// FormatCoordinates renders a lat/lon pair with hemisphere suffixes.
func FormatCoordinates(lat, lon float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", lat, ns, lon, ew)
}
