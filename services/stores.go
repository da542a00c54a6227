package services

import (
	"context"

	"github.com/fadhlanhapp/ricemill-backend/models"
)

// DealStore persists deals. *repository.DealRepository satisfies it.
type DealStore interface {
	StoreDeal(ctx context.Context, deal *models.Deal) error
	GetDeal(ctx context.Context, millID, id string) (*models.Deal, error)
	ListDeals(ctx context.Context, filter models.DealFilter) ([]*models.Deal, error)
	RemoveDeal(ctx context.Context, millID, id string) (bool, error)
}

// TransactionStore persists party payments. *repository.TransactionRepository satisfies it.
type TransactionStore interface {
	StoreTransaction(ctx context.Context, txn *models.Transaction) error
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	RemoveTransaction(ctx context.Context, millID, id string) (bool, error)
}
