// Package core defines the domain types shared by the store, planner and
// interpreter, plus the amount formatting used in every user-facing string.
package core

import (
	"strconv"
	"strings"
)

// FormatAmount renders a whole-unit amount with grouped thousands and no
// decimals, e.g. 50000 -> "50,000". Amounts are stored as whole pesos, so
// there is never a fractional part to render.
func FormatAmount(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// SumAmounts totals the amounts of a record sequence. The total covers every
// returned record, matching the listing the user sees.
func SumAmounts(records []Record) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total
}
