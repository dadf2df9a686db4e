package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0"},
		{5, "Rs 5"},
		{999, "Rs 999"},
		{1000, "Rs 1,000"},
		{1234.5, "Rs 1,234.5"},
		{1234.56, "Rs 1,234.56"},
		{1234.567, "Rs 1,234.57"},
		{1000000, "Rs 1,000,000"},
		{250.00, "Rs 250"},
		{-1234.5, "Rs -1,234.5"},
		{0.1 + 0.2, "Rs 0.3"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatPrice(c.in), "FormatPrice(%v)", c.in)
	}
}

func TestFormatPriceNonFinite(t *testing.T) {
	assert.Equal(t, "Rs 0", FormatPrice(math.NaN()))
	assert.Equal(t, "Rs 0", FormatPrice(math.Inf(1)))
}

func TestFormatNullablePrice(t *testing.T) {
	assert.Equal(t, "Rs 0", FormatNullablePrice(nil))

	p := 1500.0
	assert.Equal(t, "Rs 1,500", FormatNullablePrice(&p))
}
