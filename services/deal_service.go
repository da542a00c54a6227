package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/repository"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// invoice numbers carry six random hex digits; a collision is retried with a fresh number
const invoiceAttempts = 3

// DealService handles purchase and sale records
type DealService struct {
	store       DealStore
	calculation *CalculationService
	now         func() time.Time
}

// NewDealService creates a new deal service
func NewDealService(store DealStore, calculation *CalculationService) *DealService {
	return &DealService{
		store:       store,
		calculation: calculation,
		now:         time.Now,
	}
}

// CreateDeal validates, prices and stores a deal for a mill
func (s *DealService) CreateDeal(ctx context.Context, millID string, req *models.CreateDealRequest) (*models.Deal, error) {
	if err := s.validateDealRequest(millID, req); err != nil {
		return nil, err
	}

	dealDate := s.now()
	if strings.TrimSpace(req.DealDate) != "" {
		parsed, err := utils.ParseDate(req.DealDate, "dealDate")
		if err != nil {
			return nil, err
		}
		dealDate = parsed
	}

	priced, err := s.calculation.CalculateDeal(&models.DealCalculationRequest{
		WeightKg:        req.WeightKg,
		PricePerQuintal: req.PricePerQuintal,
		GSTRate:         req.GSTRate,
		TaxType:         req.TaxType,
	})
	if err != nil {
		return nil, err
	}

	deal := &models.Deal{
		ID:              utils.GenerateID(),
		MillID:          millID,
		DealType:        req.DealType,
		Commodity:       req.Commodity,
		PartyName:       utils.FormatNameForDisplay(req.PartyName),
		PartyMobile:     strings.TrimSpace(req.PartyMobile),
		VehicleNo:       strings.ToUpper(utils.CleanWhitespace(req.VehicleNo)),
		Bags:            req.Bags,
		WeightKg:        req.WeightKg,
		PricePerQuintal: req.PricePerQuintal,
		GSTRate:         req.GSTRate,
		TaxType:         priced.TaxType,
		BaseAmount:      priced.GST.BaseAmount,
		GSTAmount:       priced.GST.GSTAmount,
		TotalAmount:     priced.GST.TotalAmount,
		DealDate:        dealDate,
		Note:            strings.TrimSpace(req.Note),
	}

	for attempt := 1; ; attempt++ {
		deal.InvoiceNo = utils.GenerateInvoiceNo(deal.DealType, deal.DealDate)
		err = s.store.StoreDeal(ctx, deal)
		if err == nil {
			return deal, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			log.Error().Err(err).Str("mill_id", millID).Msg("failed to store deal")
			return nil, utils.NewInternalError(utils.ErrFailedToStore)
		}
		if attempt == invoiceAttempts {
			return nil, utils.NewConflictError("could not allocate a unique invoice number")
		}
		log.Warn().Str("invoice_no", deal.InvoiceNo).Msg("invoice number collision, retrying")
	}
}

// ListDeals retrieves a mill's deals matching filter
func (s *DealService) ListDeals(ctx context.Context, filter models.DealFilter) ([]*models.Deal, error) {
	if filter.Party != "" {
		filter.Party = utils.FormatNameForDisplay(filter.Party)
	}

	deals, err := s.store.ListDeals(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("mill_id", filter.MillID).Msg("failed to list deals")
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return deals, nil
}

// GetDeal retrieves a single deal
func (s *DealService) GetDeal(ctx context.Context, millID, id string) (*models.Deal, error) {
	deal, err := s.store.GetDeal(ctx, millID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError("Deal")
	}
	if err != nil {
		log.Error().Err(err).Str("deal_id", id).Msg("failed to get deal")
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return deal, nil
}

// RemoveDeal deletes a deal
func (s *DealService) RemoveDeal(ctx context.Context, millID, id string) error {
	removed, err := s.store.RemoveDeal(ctx, millID, id)
	if err != nil {
		log.Error().Err(err).Str("deal_id", id).Msg("failed to delete deal")
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !removed {
		return utils.NewNotFoundError("Deal")
	}
	return nil
}

// validateDealRequest validates deal fields that do not depend on pricing
func (s *DealService) validateDealRequest(millID string, req *models.CreateDealRequest) error {
	if err := utils.ValidateRequired(millID, "millId"); err != nil {
		return err
	}
	if err := utils.ValidateOneOf(req.DealType, []string{utils.DealTypePurchase, utils.DealTypeSale}, "dealType"); err != nil {
		return err
	}
	if err := utils.ValidateOneOf(req.Commodity, utils.Commodities, "commodity"); err != nil {
		return err
	}
	if err := utils.ValidateRequired(req.PartyName, "partyName"); err != nil {
		return err
	}
	if err := utils.ValidateMobile(strings.TrimSpace(req.PartyMobile)); err != nil {
		return err
	}
	return utils.ValidateNonNegative(float64(req.Bags), "bags")
}
