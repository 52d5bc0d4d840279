package utils

import (
	"strconv"
	"strings"
)

// FormatINR formats a whole-rupee amount as a string like "₹1,23,456".
// Uses the Indian grouping system: the last three digits, then pairs.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "-₹" + s
		}
		return "₹" + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 4)
	if neg {
		b.WriteString("-₹")
	} else {
		b.WriteString("₹")
	}

	// Head digits grouped in pairs, then the final group of three.
	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	rem := len(head) % 2
	if rem == 1 {
		b.WriteString(head[:1])
		head = head[1:]
		if len(head) > 0 {
			b.WriteByte(',')
		}
	}
	for i := 0; i < len(head); i += 2 {
		b.WriteString(head[i : i+2])
		b.WriteByte(',')
	}
	b.WriteString(tail)

	return b.String()
}
