package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

func newTestDealService(store *fakeDealStore) *DealService {
	service := NewDealService(store, NewCalculationService())
	service.now = func() time.Time { return time.Date(2024, time.February, 15, 11, 0, 0, 0, time.UTC) }
	return service
}

func validDealRequest() *models.CreateDealRequest {
	return &models.CreateDealRequest{
		DealType:        utils.DealTypePurchase,
		Commodity:       utils.CommodityPaddy,
		PartyName:       "  ramesh   kumar ",
		PartyMobile:     "9876543210",
		VehicleNo:       "ap 09  ab 1234",
		Bags:            50,
		WeightKg:        2500,
		PricePerQuintal: 2000,
		GSTRate:         5,
	}
}

func TestDealService_CreateDeal(t *testing.T) {
	store := &fakeDealStore{}
	service := newTestDealService(store)

	deal, err := service.CreateDeal(context.Background(), "mill-1", validDealRequest())
	require.NoError(t, err)

	assert.Len(t, deal.ID, 36)
	assert.Equal(t, "mill-1", deal.MillID)
	assert.Regexp(t, regexp.MustCompile(`^P/2023-24/[0-9A-F]{6}$`), deal.InvoiceNo)
	assert.Equal(t, "Ramesh Kumar", deal.PartyName)
	assert.Equal(t, "AP 09 AB 1234", deal.VehicleNo)
	assert.Equal(t, utils.TaxTypeExclusive, deal.TaxType)
	assert.Equal(t, 50000.0, deal.BaseAmount)
	assert.Equal(t, 2500.0, deal.GSTAmount)
	assert.Equal(t, 52500.0, deal.TotalAmount)
	assert.Equal(t, 2024, deal.DealDate.Year())
	assert.Len(t, store.deals, 1)
}

func TestDealService_CreateDeal_ExplicitDate(t *testing.T) {
	store := &fakeDealStore{}
	service := newTestDealService(store)

	req := validDealRequest()
	req.DealType = utils.DealTypeSale
	req.DealDate = "2024-04-02"

	deal, err := service.CreateDeal(context.Background(), "mill-1", req)
	require.NoError(t, err)
	assert.Equal(t, time.April, deal.DealDate.Month())
	assert.Regexp(t, regexp.MustCompile(`^S/2024-25/`), deal.InvoiceNo)

	req.DealDate = "02-04-2024"
	_, err = service.CreateDeal(context.Background(), "mill-1", req)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestDealService_CreateDeal_Validation(t *testing.T) {
	service := newTestDealService(&fakeDealStore{})

	tests := []struct {
		name   string
		mutate func(*models.CreateDealRequest)
	}{
		{"missing party", func(r *models.CreateDealRequest) { r.PartyName = " " }},
		{"zero weight", func(r *models.CreateDealRequest) { r.WeightKg = 0 }},
		{"zero price", func(r *models.CreateDealRequest) { r.PricePerQuintal = 0 }},
		{"bad slab", func(r *models.CreateDealRequest) { r.GSTRate = 10 }},
		{"bad mobile", func(r *models.CreateDealRequest) { r.PartyMobile = "12345" }},
		{"bad commodity", func(r *models.CreateDealRequest) { r.Commodity = "wheat" }},
		{"bad type", func(r *models.CreateDealRequest) { r.DealType = "barter" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDealRequest()
			tt.mutate(req)
			_, err := service.CreateDeal(context.Background(), "mill-1", req)
			requireAppError(t, err, http.StatusBadRequest)
		})
	}

	_, err := service.CreateDeal(context.Background(), "", validDealRequest())
	requireAppError(t, err, http.StatusBadRequest)
}

func TestDealService_CreateDeal_RetriesInvoiceCollision(t *testing.T) {
	store := &fakeDealStore{duplicates: 1}
	service := newTestDealService(store)

	_, err := service.CreateDeal(context.Background(), "mill-1", validDealRequest())
	require.NoError(t, err)
	assert.Len(t, store.deals, 1)

	store = &fakeDealStore{duplicates: invoiceAttempts}
	service = newTestDealService(store)
	_, err = service.CreateDeal(context.Background(), "mill-1", validDealRequest())
	requireAppError(t, err, http.StatusConflict)
}

func TestDealService_CreateDeal_StoreFailure(t *testing.T) {
	service := newTestDealService(&fakeDealStore{err: errors.New("connection refused")})

	_, err := service.CreateDeal(context.Background(), "mill-1", validDealRequest())
	appErr := requireAppError(t, err, http.StatusInternalServerError)
	assert.Equal(t, utils.ErrFailedToStore, appErr.Message)
}

func TestDealService_GetListRemove(t *testing.T) {
	store := &fakeDealStore{}
	service := newTestDealService(store)
	ctx := context.Background()

	deal, err := service.CreateDeal(ctx, "mill-1", validDealRequest())
	require.NoError(t, err)

	got, err := service.GetDeal(ctx, "mill-1", deal.ID)
	require.NoError(t, err)
	assert.Equal(t, deal, got)

	// other mills cannot see the deal
	_, err = service.GetDeal(ctx, "mill-2", deal.ID)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Deal not found", appErr.Message)

	deals, err := service.ListDeals(ctx, models.DealFilter{MillID: "mill-1", Party: "RAMESH kumar"})
	require.NoError(t, err)
	assert.Len(t, deals, 1)
	assert.Equal(t, "Ramesh Kumar", store.lastFilter.Party)

	require.NoError(t, service.RemoveDeal(ctx, "mill-1", deal.ID))
	requireAppError(t, service.RemoveDeal(ctx, "mill-1", deal.ID), http.StatusNotFound)
}
