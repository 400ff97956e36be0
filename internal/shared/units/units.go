package units

// SpeedKmh converts a distance in meters covered in the given number of
// seconds to an average speed in km/h. Returns 0 when seconds is 0 so
// callers never divide by zero.
func SpeedKmh(distanceMeters, seconds float64) float64 {
	if seconds == 0 {
		return 0
	}
	return (distanceMeters / 1000) / (seconds / 3600)
}
