package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"500", 0, "¥500"},
		{"12345", 0, "¥12,345"},
		{"12345.604", 2, "¥12,345.60"},
		{"-88.4", 0, "-¥88"},
	}
	for _, tc := range cases {
		got := Format(decimal.RequireFromString(tc.in), tc.places)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.34%", Percent(decimal.RequireFromString("0.1234"), 2))
	assert.Equal(t, "13%", Percent(decimal.RequireFromString("0.13"), 0))
}
