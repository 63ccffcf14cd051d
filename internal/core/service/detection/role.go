package detection

import "strings"

// inferRole scans roleKeywords in insertion order and returns the first
// matching role key with confidence 0.7. Absent any match it falls back to
// the weak default ("signer", 0.3). This is deliberately the only place
// role inference happens so a future learned classifier is a one-file swap.
func inferRole(textLower string) (roleKey string, confidence float64) {
	for _, entry := range roleKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(textLower, kw) {
				return entry.Key, 0.7
			}
		}
	}
	return "signer", 0.3
}
