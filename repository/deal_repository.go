package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/fadhlanhapp/ricemill-backend/models"
)

const dealColumns = `id, mill_id, invoice_no, deal_type, commodity, party_name, party_mobile,
	vehicle_no, bags, weight_kg, price_per_quintal, gst_rate, tax_type, base_amount,
	gst_amount, total_amount, deal_date, note, created_at`

// DealRepository handles database operations for deals
type DealRepository struct {
	DB *sql.DB
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{DB: db}
}

// StoreDeal saves a deal to the database
func (r *DealRepository) StoreDeal(ctx context.Context, deal *models.Deal) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO deals
		 (id, mill_id, invoice_no, deal_type, commodity, party_name, party_mobile, vehicle_no,
		  bags, weight_kg, price_per_quintal, gst_rate, tax_type, base_amount, gst_amount,
		  total_amount, deal_date, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING created_at`,
		deal.ID, deal.MillID, deal.InvoiceNo, deal.DealType, deal.Commodity, deal.PartyName,
		deal.PartyMobile, deal.VehicleNo, deal.Bags, deal.WeightKg, deal.PricePerQuintal,
		deal.GSTRate, deal.TaxType, deal.BaseAmount, deal.GSTAmount, deal.TotalAmount,
		deal.DealDate, deal.Note,
	).Scan(&deal.CreatedAt)
	if err != nil {
		return translateError(err, "failed to insert deal")
	}
	return nil
}

// GetDeal retrieves a deal of a mill by ID
func (r *DealRepository) GetDeal(ctx context.Context, millID, id string) (*models.Deal, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+dealColumns+` FROM deals WHERE mill_id = $1 AND id = $2`, millID, id)

	deal, err := scanDeal(row)
	if err != nil {
		return nil, translateError(err, "failed to get deal")
	}
	return deal, nil
}

// ListDeals retrieves the deals matching filter, newest first
func (r *DealRepository) ListDeals(ctx context.Context, filter models.DealFilter) ([]*models.Deal, error) {
	w := &whereBuilder{
		query: `SELECT ` + dealColumns + ` FROM deals WHERE mill_id = $1`,
		args:  []interface{}{filter.MillID},
	}
	if filter.DealType != "" {
		w.and("deal_type = $%d", filter.DealType)
	}
	if len(filter.Commodities) > 0 {
		w.and("commodity = ANY($%d)", pq.Array(filter.Commodities))
	}
	if filter.Party != "" {
		w.and("party_name = $%d", filter.Party)
	}
	if filter.From != nil {
		w.and("deal_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.and("deal_date <= $%d", *filter.To)
	}
	w.query += " ORDER BY deal_date DESC, created_at DESC"

	rows, err := r.DB.QueryContext(ctx, w.query, w.args...)
	if err != nil {
		return nil, translateError(err, "failed to list deals")
	}
	defer rows.Close()

	deals := []*models.Deal{}
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan deal")
		}
		deals = append(deals, deal)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "failed to iterate deals")
	}
	return deals, nil
}

// RemoveDeal deletes a deal of a mill, reporting whether a row was removed
func (r *DealRepository) RemoveDeal(ctx context.Context, millID, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM deals WHERE mill_id = $1 AND id = $2`, millID, id)
	if err != nil {
		return false, translateError(err, "failed to delete deal")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, translateError(err, "failed to delete deal")
	}
	return affected > 0, nil
}

func scanDeal(row rowScanner) (*models.Deal, error) {
	var deal models.Deal
	err := row.Scan(
		&deal.ID, &deal.MillID, &deal.InvoiceNo, &deal.DealType, &deal.Commodity,
		&deal.PartyName, &deal.PartyMobile, &deal.VehicleNo, &deal.Bags, &deal.WeightKg,
		&deal.PricePerQuintal, &deal.GSTRate, &deal.TaxType, &deal.BaseAmount,
		&deal.GSTAmount, &deal.TotalAmount, &deal.DealDate, &deal.Note, &deal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deal, nil
}
