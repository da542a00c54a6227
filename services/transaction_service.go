package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// TransactionService handles money received from and paid to parties
type TransactionService struct {
	store TransactionStore
	now   func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{
		store: store,
		now:   time.Now,
	}
}

// CreateTransaction creates a new transaction record
func (s *TransactionService) CreateTransaction(ctx context.Context, millID string, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	// Validate input
	if err := utils.ValidateRequired(millID, "millId"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.PartyName, "partyName"); err != nil {
		return nil, err
	}
	if err := utils.ValidateOneOf(req.Direction, []string{utils.DirectionReceived, utils.DirectionPaid}, "direction"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateOneOf(req.Mode, utils.PaymentModes, "mode"); err != nil {
		return nil, err
	}

	txnDate := s.now()
	if strings.TrimSpace(req.TxnDate) != "" {
		parsed, err := utils.ParseDate(req.TxnDate, "txnDate")
		if err != nil {
			return nil, err
		}
		txnDate = parsed
	}

	txn := &models.Transaction{
		ID:        utils.GenerateID(),
		MillID:    millID,
		PartyName: utils.FormatNameForDisplay(req.PartyName),
		Direction: req.Direction,
		Amount:    utils.RoundTo2Decimals(req.Amount),
		Mode:      req.Mode,
		Reference: strings.TrimSpace(req.Reference),
		Note:      strings.TrimSpace(req.Note),
		TxnDate:   txnDate,
	}

	if err := s.store.StoreTransaction(ctx, txn); err != nil {
		log.Error().Err(err).Str("mill_id", millID).Msg("failed to store transaction")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return txn, nil
}

// ListTransactions retrieves a mill's transactions matching filter
func (s *TransactionService) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	if filter.Party != "" {
		filter.Party = utils.FormatNameForDisplay(filter.Party)
	}

	txns, err := s.store.ListTransactions(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("mill_id", filter.MillID).Msg("failed to list transactions")
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return txns, nil
}

// RemoveTransaction deletes a transaction
func (s *TransactionService) RemoveTransaction(ctx context.Context, millID, id string) error {
	removed, err := s.store.RemoveTransaction(ctx, millID, id)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", id).Msg("failed to delete transaction")
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !removed {
		return utils.NewNotFoundError("Transaction")
	}
	return nil
}
