package repository

import (
	"context"
	"database/sql"

	"github.com/fadhlanhapp/ricemill-backend/models"
)

const transactionColumns = `id, mill_id, party_name, direction, amount, mode, reference, note, txn_date, created_at`

// TransactionRepository handles party payment data operations
type TransactionRepository struct {
	DB *sql.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// StoreTransaction creates a new transaction record
func (r *TransactionRepository) StoreTransaction(ctx context.Context, txn *models.Transaction) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO transactions (id, mill_id, party_name, direction, amount, mode, reference, note, txn_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		txn.ID, txn.MillID, txn.PartyName, txn.Direction, txn.Amount, txn.Mode,
		txn.Reference, txn.Note, txn.TxnDate,
	).Scan(&txn.CreatedAt)
	if err != nil {
		return translateError(err, "failed to insert transaction")
	}
	return nil
}

// ListTransactions retrieves the transactions matching filter, newest first
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	w := &whereBuilder{
		query: `SELECT ` + transactionColumns + ` FROM transactions WHERE mill_id = $1`,
		args:  []interface{}{filter.MillID},
	}
	if filter.Party != "" {
		w.and("party_name = $%d", filter.Party)
	}
	if filter.Direction != "" {
		w.and("direction = $%d", filter.Direction)
	}
	if filter.From != nil {
		w.and("txn_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.and("txn_date <= $%d", *filter.To)
	}
	w.query += " ORDER BY txn_date DESC, created_at DESC"

	rows, err := r.DB.QueryContext(ctx, w.query, w.args...)
	if err != nil {
		return nil, translateError(err, "failed to list transactions")
	}
	defer rows.Close()

	txns := []*models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(&txn.ID, &txn.MillID, &txn.PartyName, &txn.Direction, &txn.Amount,
			&txn.Mode, &txn.Reference, &txn.Note, &txn.TxnDate, &txn.CreatedAt); err != nil {
			return nil, translateError(err, "failed to scan transaction")
		}
		txns = append(txns, &txn)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "failed to iterate transactions")
	}
	return txns, nil
}

// RemoveTransaction deletes a transaction of a mill, reporting whether a row was removed
func (r *TransactionRepository) RemoveTransaction(ctx context.Context, millID, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE mill_id = $1 AND id = $2`, millID, id)
	if err != nil {
		return false, translateError(err, "failed to delete transaction")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, translateError(err, "failed to delete transaction")
	}
	return affected > 0, nil
}
