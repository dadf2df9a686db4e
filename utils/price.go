package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders an amount in Pakistani Rupees: "Rs " followed by
// a comma-grouped number with at most two decimal places and no
// trailing zeros, e.g. FormatPrice(1234.5) == "Rs 1,234.5".
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "Rs 0"
	}

	rounded := math.Round(price*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	out := groupThousands(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return "Rs " + out
}

// FormatNullablePrice treats a missing amount as zero.
func FormatNullablePrice(price *float64) string {
	if price == nil {
		return "Rs 0"
	}
	return FormatPrice(*price)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
