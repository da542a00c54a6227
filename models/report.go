package models

import (
	"time"

	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// ReportPeriod is a resolved reporting window. Nil bounds are open.
type ReportPeriod struct {
	Name  string     `json:"name"`
	Label string     `json:"label"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// CommoditySummary aggregates the deals of one type and commodity
type CommoditySummary struct {
	DealType               string  `json:"dealType"`
	Commodity              string  `json:"commodity"`
	DealCount              int     `json:"dealCount"`
	WeightKg               float64 `json:"weightKg"`
	WeightQuintals         float64 `json:"weightQuintals"`
	WeightTons             float64 `json:"weightTons"`
	BaseAmount             float64 `json:"baseAmount"`
	GSTAmount              float64 `json:"gstAmount"`
	TotalAmount            float64 `json:"totalAmount"`
	AveragePricePerQuintal float64 `json:"averagePricePerQuintal"`
}

// PeriodTotals sums the summaries of one deal type
type PeriodTotals struct {
	DealCount      int     `json:"dealCount"`
	WeightQuintals float64 `json:"weightQuintals"`
	BaseAmount     float64 `json:"baseAmount"`
	GSTAmount      float64 `json:"gstAmount"`
	TotalAmount    float64 `json:"totalAmount"`
	FormattedTotal string  `json:"formattedTotal"`
}

// PeriodReport is the purchase and sale summary of a mill over a period
type PeriodReport struct {
	MillID          string             `json:"millId"`
	Period          ReportPeriod       `json:"period"`
	Purchases       []CommoditySummary `json:"purchases"`
	Sales           []CommoditySummary `json:"sales"`
	PurchaseTotals  PeriodTotals       `json:"purchaseTotals"`
	SaleTotals      PeriodTotals       `json:"saleTotals"`
	ProfitLoss      utils.ProfitLoss   `json:"profitLoss"`
	PaddyBoughtKg   float64            `json:"paddyBoughtKg"`
	ExpectedRiceKg  float64            `json:"expectedRiceKg"`
	RiceSoldKg      float64            `json:"riceSoldKg"`
	YieldPercentage float64            `json:"yieldPercentage"`
}

// PartyBalance is what a party owes the mill (positive) or is owed by it (negative)
type PartyBalance struct {
	PartyName            string  `json:"partyName"`
	SalesBilled          float64 `json:"salesBilled"`
	PurchasesBilled      float64 `json:"purchasesBilled"`
	Received             float64 `json:"received"`
	Paid                 float64 `json:"paid"`
	Outstanding          float64 `json:"outstanding"`
	FormattedOutstanding string  `json:"formattedOutstanding"`
}

// PartyLedger lists party balances for a period
type PartyLedger struct {
	MillID          string         `json:"millId"`
	Period          ReportPeriod   `json:"period"`
	Parties         []PartyBalance `json:"parties"`
	TotalReceivable float64        `json:"totalReceivable"`
	TotalPayable    float64        `json:"totalPayable"`
}
