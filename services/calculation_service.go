package services

import (
	"fmt"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// CalculationService handles deal, milling and tax calculations
type CalculationService struct{}

// NewCalculationService creates a new calculation service
func NewCalculationService() *CalculationService {
	return &CalculationService{}
}

// CalculateDeal prices a lot of weightKg at a rate per quintal and applies GST.
// With an inclusive tax type the rate already contains GST and is split back out.
func (s *CalculationService) CalculateDeal(request *models.DealCalculationRequest) (*models.DealCalculation, error) {
	taxType, err := s.validateDealRequest(request)
	if err != nil {
		return nil, err
	}

	quintals := utils.KgToQuintals(request.WeightKg)
	gross := utils.CalculateTotalPrice(request.PricePerQuintal, quintals)
	if err := utils.ValidateAmount(gross, "total price"); err != nil {
		return nil, err
	}

	var gst utils.GSTBreakdown
	if taxType == utils.TaxTypeInclusive {
		gst = utils.ReverseGST(gross, request.GSTRate)
	} else {
		gst = utils.CalculateGST(gross, request.GSTRate)
	}

	return &models.DealCalculation{
		WeightKg:            request.WeightKg,
		WeightQuintals:      quintals,
		WeightTons:          utils.QuintalsToTons(quintals),
		PricePerQuintal:     request.PricePerQuintal,
		BasePricePerQuintal: utils.CalculatePricePerQuintal(gst.BaseAmount, quintals),
		TaxType:             taxType,
		GST:                 gst,
		FormattedWeight:     utils.FormatWeight(quintals),
		FormattedTotal:      utils.FormatCurrency(gst.TotalAmount),
		AmountInWords:       utils.AmountInWords(gst.TotalAmount),
	}, nil
}

// EstimateMilling estimates rice, broken and byproduct output for a paddy lot
func (s *CalculationService) EstimateMilling(request *models.MillingEstimateRequest) (*models.MillingEstimate, error) {
	if err := utils.ValidatePositive(request.PaddyWeightKg, "paddyWeightKg"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(request.BrokenKg, "brokenKg"); err != nil {
		return nil, err
	}

	ratio := utils.DefaultMillingRatio
	if request.MillingRatio != 0 {
		if err := utils.ValidateRatio(request.MillingRatio, "millingRatio"); err != nil {
			return nil, err
		}
		ratio = request.MillingRatio
	}

	riceKg := utils.CalculateRiceOutput(request.PaddyWeightKg, ratio)
	if request.BrokenKg > riceKg {
		return nil, utils.NewValidationError(fmt.Sprintf("brokenKg cannot exceed rice output of %.2f kg", riceKg))
	}

	riceQuintals := utils.KgToQuintals(riceKg)
	return &models.MillingEstimate{
		PaddyWeightKg:       request.PaddyWeightKg,
		MillingRatio:        ratio,
		RiceOutputKg:        riceKg,
		RiceOutputQuintals:  riceQuintals,
		BrokenKg:            request.BrokenKg,
		BrokenPercentage:    utils.CalculateBrokenPercentage(request.BrokenKg, riceKg),
		ByproductKg:         utils.RoundTo2Decimals(request.PaddyWeightKg - riceKg),
		FormattedRiceOutput: utils.FormatWeight(riceQuintals),
	}, nil
}

// ConvertWeight converts a value between kg, quintal and ton
func (s *CalculationService) ConvertWeight(request *models.ConvertWeightRequest) (*models.ConvertWeightResponse, error) {
	units := []string{utils.UnitKg, utils.UnitQuintal, utils.UnitTon}
	if err := utils.ValidateOneOf(request.From, units, "from"); err != nil {
		return nil, err
	}
	if err := utils.ValidateOneOf(request.To, units, "to"); err != nil {
		return nil, err
	}

	result := fromQuintals(toQuintals(request.Value, request.From), request.To)
	return &models.ConvertWeightResponse{
		Value:     request.Value,
		From:      request.From,
		Result:    result,
		To:        request.To,
		Formatted: utils.FormatWeight(result, request.To),
	}, nil
}

func toQuintals(value float64, unit string) float64 {
	switch unit {
	case utils.UnitKg:
		return utils.KgToQuintals(value)
	case utils.UnitTon:
		return utils.TonsToQuintals(value)
	default:
		return value
	}
}

func fromQuintals(quintals float64, unit string) float64 {
	switch unit {
	case utils.UnitKg:
		return utils.QuintalsToKg(quintals)
	case utils.UnitTon:
		return utils.QuintalsToTons(quintals)
	default:
		return quintals
	}
}

// CalculateGST applies GST to an amount, or extracts it when the amount is inclusive
func (s *CalculationService) CalculateGST(request *models.GSTRequest) (*utils.GSTBreakdown, error) {
	if err := utils.ValidateNonNegative(request.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateAmount(request.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(request.GSTRate, "gstRate"); err != nil {
		return nil, err
	}

	var result utils.GSTBreakdown
	if request.Reverse {
		result = utils.ReverseGST(request.Amount, request.GSTRate)
	} else {
		result = utils.CalculateGST(request.Amount, request.GSTRate)
	}
	return &result, nil
}

// ProfitLoss compares a selling price against a cost price
func (s *CalculationService) ProfitLoss(request *models.ProfitLossRequest) utils.ProfitLoss {
	return utils.CalculateProfitLoss(request.SellingPrice, request.CostPrice)
}

// Words spells an amount for an invoice
func (s *CalculationService) Words(request *models.WordsRequest) (*models.WordsResponse, error) {
	if err := utils.ValidateAmount(request.Amount, "amount"); err != nil {
		return nil, err
	}

	return &models.WordsResponse{
		Amount:    request.Amount,
		Formatted: utils.FormatCurrency(request.Amount),
		Words:     utils.AmountInWords(request.Amount),
	}, nil
}

// validateDealRequest validates the pricing inputs and returns the effective tax type
func (s *CalculationService) validateDealRequest(request *models.DealCalculationRequest) (string, error) {
	if err := utils.ValidatePositive(request.WeightKg, "weightKg"); err != nil {
		return "", err
	}
	if err := utils.ValidatePositive(request.PricePerQuintal, "pricePerQuintal"); err != nil {
		return "", err
	}
	if err := utils.ValidateGSTRate(request.GSTRate); err != nil {
		return "", err
	}

	taxType := request.TaxType
	if taxType == "" {
		taxType = utils.TaxTypeExclusive
	}
	if err := utils.ValidateOneOf(taxType, []string{utils.TaxTypeExclusive, utils.TaxTypeInclusive}, "taxType"); err != nil {
		return "", err
	}
	return taxType, nil
}
