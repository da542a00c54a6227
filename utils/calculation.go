package utils

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale whose number pattern groups lakh and crore
var indianEnglish = language.MustParse("en-IN")

// WeightedItem is a value carrying a non-negative weight
type WeightedItem struct {
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// PricedItem is a price carrying a non-negative weight
type PricedItem struct {
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
}

// GSTBreakdown is the result of a forward or reverse GST computation
type GSTBreakdown struct {
	BaseAmount  float64 `json:"baseAmount"`
	GSTRate     float64 `json:"gstRate"`
	GSTAmount   float64 `json:"gstAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

// ProfitLoss is the margin between a selling price and a cost price
type ProfitLoss struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	IsProfit   bool    `json:"isProfit"`
}

// isFalsy reports whether n would short-circuit a divisor guard (zero or NaN)
func isFalsy(n float64) bool {
	return n == 0 || math.IsNaN(n)
}

// QuintalsToKg converts quintals to kilograms
func QuintalsToKg(quintals float64) float64 {
	return quintals * KgPerQuintal
}

// KgToQuintals converts kilograms to quintals
func KgToQuintals(kg float64) float64 {
	return kg / KgPerQuintal
}

// QuintalsToTons converts quintals to metric tons
func QuintalsToTons(quintals float64) float64 {
	return quintals / QuintalsPerTon
}

// TonsToQuintals converts metric tons to quintals
func TonsToQuintals(tons float64) float64 {
	return tons * QuintalsPerTon
}

// CalculatePricePerQuintal returns the rate per quintal for a total price.
// A zero weight yields 0.
func CalculatePricePerQuintal(totalPrice, weightInQuintals float64) float64 {
	if isFalsy(weightInQuintals) {
		return 0
	}
	return RoundTo2Decimals(totalPrice / weightInQuintals)
}

// CalculateTotalPrice returns the amount for a weight at a rate per quintal
func CalculateTotalPrice(pricePerQuintal, weightInQuintals float64) float64 {
	return RoundTo2Decimals(pricePerQuintal * weightInQuintals)
}

// CalculateRiceOutput estimates milled rice from a paddy weight.
// The milling ratio defaults to DefaultMillingRatio when omitted.
func CalculateRiceOutput(paddyWeight float64, millingRatio ...float64) float64 {
	ratio := DefaultMillingRatio
	if len(millingRatio) > 0 {
		ratio = millingRatio[0]
	}
	return RoundTo2Decimals(paddyWeight * ratio)
}

// CalculateBrokenPercentage returns broken rice as a percentage of total rice
func CalculateBrokenPercentage(brokenRice, totalRice float64) float64 {
	if isFalsy(totalRice) {
		return 0
	}
	return RoundTo2Decimals(brokenRice / totalRice * 100)
}

// CalculateGST adds GST to a base amount. The GST amount is rounded to whole rupees.
func CalculateGST(amount, gstRate float64) GSTBreakdown {
	gstAmount := RoundToNearest(amount * gstRate / 100)
	return GSTBreakdown{
		BaseAmount:  amount,
		GSTRate:     gstRate,
		GSTAmount:   gstAmount,
		TotalAmount: amount + gstAmount,
	}
}

// ReverseGST splits a GST-inclusive total into base and tax.
// The base amount is rounded to whole rupees.
func ReverseGST(totalAmount, gstRate float64) GSTBreakdown {
	baseAmount := RoundToNearest(totalAmount * 100 / (100 + gstRate))
	return GSTBreakdown{
		BaseAmount:  baseAmount,
		GSTRate:     gstRate,
		GSTAmount:   totalAmount - baseAmount,
		TotalAmount: totalAmount,
	}
}

// CalculateAveragePrice returns the weight-averaged price of the items
func CalculateAveragePrice(prices []PricedItem) float64 {
	if len(prices) == 0 {
		return 0
	}

	var totalValue, totalWeight float64
	for _, item := range prices {
		totalValue += item.Price * item.Weight
		totalWeight += item.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return RoundTo2Decimals(totalValue / totalWeight)
}

// CalculateWeightedAverage returns the weight-averaged value of the items
func CalculateWeightedAverage(items []WeightedItem) float64 {
	if len(items) == 0 {
		return 0
	}

	var totalValue, totalWeight float64
	for _, item := range items {
		totalValue += item.Value * item.Weight
		totalWeight += item.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return RoundTo2Decimals(totalValue / totalWeight)
}

// CalculatePercentage returns value as a percentage of total
func CalculatePercentage(value, total float64) float64 {
	if isFalsy(total) {
		return 0
	}
	return RoundTo2Decimals(value / total * 100)
}

// CalculateProfitLoss compares a selling price against a cost price.
// A negative cost price is not special-cased.
func CalculateProfitLoss(sellingPrice, costPrice float64) ProfitLoss {
	amount := RoundTo2Decimals(sellingPrice - costPrice)

	var percentage float64
	if costPrice != 0 {
		percentage = RoundTo2Decimals(amount / costPrice * 100)
	}

	return ProfitLoss{
		Amount:     amount,
		Percentage: percentage,
		IsProfit:   amount >= 0,
	}
}

// RoundTo2Decimals rounds a number to 2 decimal places for monetary calculations.
// Binary representation is not corrected for: 1.005 rounds to 1.
func RoundTo2Decimals(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// RoundToNearest rounds to the nearest whole number
func RoundToNearest(num float64) float64 {
	return math.Round(num)
}

// FormatCurrency renders an amount in rupees with Indian digit grouping,
// e.g. 123456.5 -> ₹1,23,456.50
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return RupeeSymbol + strconv.FormatFloat(amount, 'f', -1, 64)
	}

	rounded := RoundTo2Decimals(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	return sign + RupeeSymbol + message.NewPrinter(indianEnglish).Sprintf("%.2f", math.Abs(rounded))
}

// FormatWeight renders a weight with its unit, pluralized unless the value is exactly 1.
// The unit defaults to quintal.
func FormatWeight(weight float64, unit ...string) string {
	name := UnitQuintal
	if len(unit) > 0 && unit[0] != "" {
		name = unit[0]
	}

	rounded := RoundTo2Decimals(weight)
	suffix := ""
	if rounded != 1 {
		suffix = "s"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + name + suffix
}
