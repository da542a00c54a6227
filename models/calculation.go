package models

import "github.com/fadhlanhapp/ricemill-backend/utils"

// DealCalculationRequest request model
type DealCalculationRequest struct {
	WeightKg        float64 `json:"weightKg" binding:"gt=0"`
	PricePerQuintal float64 `json:"pricePerQuintal" binding:"gt=0"`
	GSTRate         float64 `json:"gstRate" binding:"gst_rate"`
	TaxType         string  `json:"taxType" binding:"omitempty,oneof=exclusive inclusive"`
}

// DealCalculation is the priced breakdown shown on a deal entry form
type DealCalculation struct {
	WeightKg            float64            `json:"weightKg"`
	WeightQuintals      float64            `json:"weightQuintals"`
	WeightTons          float64            `json:"weightTons"`
	PricePerQuintal     float64            `json:"pricePerQuintal"`
	BasePricePerQuintal float64            `json:"basePricePerQuintal"`
	TaxType             string             `json:"taxType"`
	GST                 utils.GSTBreakdown `json:"gst"`
	FormattedWeight     string             `json:"formattedWeight"`
	FormattedTotal      string             `json:"formattedTotal"`
	AmountInWords       string             `json:"amountInWords"`
}

// MillingEstimateRequest request model. A zero millingRatio uses the standard yield.
type MillingEstimateRequest struct {
	PaddyWeightKg float64 `json:"paddyWeightKg" binding:"gt=0"`
	MillingRatio  float64 `json:"millingRatio" binding:"min=0,max=1"`
	BrokenKg      float64 `json:"brokenKg" binding:"min=0"`
}

// MillingEstimate is the expected output of milling a paddy lot
type MillingEstimate struct {
	PaddyWeightKg       float64 `json:"paddyWeightKg"`
	MillingRatio        float64 `json:"millingRatio"`
	RiceOutputKg        float64 `json:"riceOutputKg"`
	RiceOutputQuintals  float64 `json:"riceOutputQuintals"`
	BrokenKg            float64 `json:"brokenKg"`
	BrokenPercentage    float64 `json:"brokenPercentage"`
	ByproductKg         float64 `json:"byproductKg"`
	FormattedRiceOutput string  `json:"formattedRiceOutput"`
}

// ConvertWeightRequest request model
type ConvertWeightRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from" binding:"required,oneof=kg quintal ton"`
	To    string  `json:"to" binding:"required,oneof=kg quintal ton"`
}

// ConvertWeightResponse response model
type ConvertWeightResponse struct {
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	Result    float64 `json:"result"`
	To        string  `json:"to"`
	Formatted string  `json:"formatted"`
}

// GSTRequest request model. Reverse treats amount as GST-inclusive.
type GSTRequest struct {
	Amount  float64 `json:"amount" binding:"min=0"`
	GSTRate float64 `json:"gstRate" binding:"min=0"`
	Reverse bool    `json:"reverse"`
}

// ProfitLossRequest request model
type ProfitLossRequest struct {
	SellingPrice float64 `json:"sellingPrice"`
	CostPrice    float64 `json:"costPrice"`
}

// WordsRequest request model
type WordsRequest struct {
	Amount float64 `json:"amount"`
}

// WordsResponse response model
type WordsResponse struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
	Words     string  `json:"words"`
}
