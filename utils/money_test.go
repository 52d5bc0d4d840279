package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{45, "₹45"},
		{320, "₹320"},
		{2550, "₹2,550"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{-255, "-₹255"},
		{-123456, "-₹1,23,456"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.amount))
	}
}
