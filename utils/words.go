package utils

import (
	"math"
	"strings"
)

var (
	onesWords = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

// 2^63 as a float64, the first value int64 cannot hold
const maxPaise = float64(1 << 63)

const (
	thousand = 1000
	lakh     = 100000
	crore    = 10000000
)

// NumberToWords spells out a whole number using the Indian numbering system
// (Thousand, Lakh, Crore). Amounts of a hundred crore and more recurse on the crore count.
func NumberToWords(num int64) string {
	if num == 0 {
		return "Zero"
	}
	if num < 0 {
		// -(num+1)+1 keeps math.MinInt64 in range
		return "Minus " + spellIndian(uint64(-(num+1))+1)
	}
	return spellIndian(uint64(num))
}

func spellIndian(n uint64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		return joinWords(tensWords[n/10], onesWords[n%10])
	case n < thousand:
		return joinWords(onesWords[n/100]+" Hundred", spellIndian(n%100))
	case n < lakh:
		return joinWords(spellIndian(n/thousand)+" Thousand", spellIndian(n%thousand))
	case n < crore:
		return joinWords(spellIndian(n/lakh)+" Lakh", spellIndian(n%lakh))
	default:
		return joinWords(spellIndian(n/crore)+" Crore", spellIndian(n%crore))
	}
}

func joinWords(head, rest string) string {
	if rest == "" {
		return head
	}
	return head + " " + rest
}

// AmountInWords spells a rupee amount for invoice footers,
// e.g. 1250.5 -> "Rupees One Thousand Two Hundred Fifty and Fifty Paise Only".
// Amounts that cannot be counted in paise as an int64 (and NaN or Inf) give "".
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.Abs(amount)*MoneyPrecision >= maxPaise {
		return ""
	}

	var b strings.Builder
	if amount < 0 {
		b.WriteString("Minus ")
		amount = -amount
	}

	totalPaise := int64(math.Round(amount * MoneyPrecision))
	rupees, paise := totalPaise/100, totalPaise%100

	b.WriteString("Rupees ")
	b.WriteString(NumberToWords(rupees))
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(NumberToWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}
