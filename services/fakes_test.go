package services

import (
	"context"
	"slices"
	"sync"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/repository"
)

// fakeDealStore is an in-memory DealStore
type fakeDealStore struct {
	mu         sync.Mutex
	deals      []*models.Deal
	err        error
	duplicates int
	lastFilter models.DealFilter
}

func (f *fakeDealStore) StoreDeal(_ context.Context, deal *models.Deal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.duplicates > 0 {
		f.duplicates--
		return repository.ErrDuplicate
	}
	f.deals = append(f.deals, deal)
	return nil
}

func (f *fakeDealStore) GetDeal(_ context.Context, millID, id string) (*models.Deal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, deal := range f.deals {
		if deal.MillID == millID && deal.ID == id {
			return deal, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDealStore) ListDeals(_ context.Context, filter models.DealFilter) ([]*models.Deal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}

	result := []*models.Deal{}
	for _, deal := range f.deals {
		if deal.MillID != filter.MillID {
			continue
		}
		if filter.DealType != "" && deal.DealType != filter.DealType {
			continue
		}
		if len(filter.Commodities) > 0 && !slices.Contains(filter.Commodities, deal.Commodity) {
			continue
		}
		if filter.Party != "" && deal.PartyName != filter.Party {
			continue
		}
		if filter.From != nil && deal.DealDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && deal.DealDate.After(*filter.To) {
			continue
		}
		result = append(result, deal)
	}
	return result, nil
}

func (f *fakeDealStore) RemoveDeal(_ context.Context, millID, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for i, deal := range f.deals {
		if deal.MillID == millID && deal.ID == id {
			f.deals = append(f.deals[:i], f.deals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeTransactionStore is an in-memory TransactionStore
type fakeTransactionStore struct {
	mu   sync.Mutex
	txns []*models.Transaction
	err  error
}

func (f *fakeTransactionStore) StoreTransaction(_ context.Context, txn *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeTransactionStore) ListTransactions(_ context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	result := []*models.Transaction{}
	for _, txn := range f.txns {
		if txn.MillID != filter.MillID {
			continue
		}
		if filter.Party != "" && txn.PartyName != filter.Party {
			continue
		}
		if filter.Direction != "" && txn.Direction != filter.Direction {
			continue
		}
		if filter.From != nil && txn.TxnDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && txn.TxnDate.After(*filter.To) {
			continue
		}
		result = append(result, txn)
	}
	return result, nil
}

func (f *fakeTransactionStore) RemoveTransaction(_ context.Context, millID, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for i, txn := range f.txns {
		if txn.MillID == millID && txn.ID == id {
			f.txns = append(f.txns[:i], f.txns[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
