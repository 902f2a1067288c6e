package shared

import "strconv"

// Percentage returns part/total*100 rounded to one decimal place, or 0 when
// total is not positive. An exact tie rounds to the even digit, so 1/16 is 6.2.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(part) / float64(total) * 100
	// strconv rounds the exact binary value half to even.
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(ratio, 'f', 1, 64), 64)
	return rounded
}
