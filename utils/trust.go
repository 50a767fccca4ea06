package utils

// ClampTrustScore keeps a profile's trust score inside the 0..5 scale.
func ClampTrustScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}
