package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/ricemill-backend/handlers"
	"github.com/fadhlanhapp/ricemill-backend/models"
)

type emptyDeals struct{}

func (emptyDeals) StoreDeal(context.Context, *models.Deal) error { return nil }
func (emptyDeals) GetDeal(context.Context, string, string) (*models.Deal, error) {
	return &models.Deal{}, nil
}
func (emptyDeals) ListDeals(context.Context, models.DealFilter) ([]*models.Deal, error) {
	return []*models.Deal{}, nil
}
func (emptyDeals) RemoveDeal(context.Context, string, string) (bool, error) { return true, nil }

type emptyTransactions struct{}

func (emptyTransactions) StoreTransaction(context.Context, *models.Transaction) error { return nil }
func (emptyTransactions) ListTransactions(context.Context, models.TransactionFilter) ([]*models.Transaction, error) {
	return []*models.Transaction{}, nil
}
func (emptyTransactions) RemoveTransaction(context.Context, string, string) (bool, error) {
	return true, nil
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, handlers.RegisterValidators())

	router := gin.New()
	SetupRoutes(router, handlers.NewHandlerServices(emptyDeals{}, emptyTransactions{}))

	tests := []struct {
		method string
		path   string
		body   string
		mill   string
		want   int
	}{
		{http.MethodGet, "/health", "", "", http.StatusOK},
		{http.MethodPost, "/api/v1/calculate/milling", `{"paddyWeightKg":100}`, "", http.StatusOK},
		{http.MethodPost, "/api/v1/calculate/gst", `{"amount":1000,"gstRate":18}`, "", http.StatusOK},
		{http.MethodPost, "/api/v1/calculate/profit-loss", `{"sellingPrice":120,"costPrice":100}`, "", http.StatusOK},
		{http.MethodGet, "/api/v1/deals", "", "", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/deals", "", "mill-1", http.StatusOK},
		{http.MethodGet, "/api/v1/transactions", "", "mill-1", http.StatusOK},
		{http.MethodDelete, "/api/v1/transactions/abc", "", "mill-1", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/summary?period=fy", "", "mill-1", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/summary", "", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		if tt.mill != "" {
			req.Header.Set("X-Mill-ID", tt.mill)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
	}
}
