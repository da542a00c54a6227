package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// Report period names accepted by ResolvePeriod
const (
	PeriodToday  = "today"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodFY     = "fy"
	PeriodCustom = "custom"
)

// ReportService builds period summaries and party ledgers
type ReportService struct {
	deals        DealStore
	transactions TransactionStore
}

// NewReportService creates a new report service
func NewReportService(deals DealStore, transactions TransactionStore) *ReportService {
	return &ReportService{
		deals:        deals,
		transactions: transactions,
	}
}

// ResolvePeriod turns a named period around ref into concrete bounds.
// An empty name means the current month.
func (s *ReportService) ResolvePeriod(period string, ref time.Time, startDate, endDate string) (models.ReportPeriod, error) {
	var r utils.DateRange
	var label string

	switch period {
	case PeriodToday:
		r, label = utils.GetDayRange(ref), utils.FormatDate(ref)
	case "", PeriodMonth:
		period = PeriodMonth
		r, label = utils.GetMonthRange(ref), ref.Format("January 2006")
	case PeriodYear:
		r, label = utils.GetYearRange(ref), ref.Format("2006")
	case PeriodFY:
		r, label = utils.GetFinancialYear(ref), "FY "+utils.FinancialYearLabel(ref)
	case PeriodCustom:
		start, end, err := utils.GetDateRangeFromQuery(startDate, endDate)
		if err != nil {
			return models.ReportPeriod{}, err
		}
		return models.ReportPeriod{Name: period, Label: customLabel(start, end), Start: start, End: end}, nil
	default:
		return models.ReportPeriod{}, utils.NewValidationError(
			fmt.Sprintf("period must be one of [%s, %s, %s, %s, %s]", PeriodToday, PeriodMonth, PeriodYear, PeriodFY, PeriodCustom))
	}

	return models.ReportPeriod{Name: period, Label: label, Start: &r.Start, End: &r.End}, nil
}

func customLabel(start, end *time.Time) string {
	switch {
	case start != nil && end != nil:
		return utils.FormatDate(*start) + " - " + utils.FormatDate(*end)
	case start != nil:
		return "From " + utils.FormatDate(*start)
	case end != nil:
		return "Until " + utils.FormatDate(*end)
	default:
		return "All time"
	}
}

// summaryKey groups deals by type and commodity
type summaryKey struct {
	dealType  string
	commodity string
}

type summaryAccumulator struct {
	models.CommoditySummary
	prices []utils.PricedItem
}

// PeriodReport summarizes a mill's purchases and sales over period
func (s *ReportService) PeriodReport(ctx context.Context, millID string, period models.ReportPeriod) (*models.PeriodReport, error) {
	deals, err := s.deals.ListDeals(ctx, models.DealFilter{MillID: millID, From: period.Start, To: period.End})
	if err != nil {
		log.Error().Err(err).Str("mill_id", millID).Msg("failed to load deals for report")
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	groups := make(map[summaryKey]*summaryAccumulator)
	for _, deal := range deals {
		key := summaryKey{dealType: deal.DealType, commodity: deal.Commodity}
		acc, ok := groups[key]
		if !ok {
			acc = &summaryAccumulator{CommoditySummary: models.CommoditySummary{DealType: deal.DealType, Commodity: deal.Commodity}}
			groups[key] = acc
		}

		quintals := utils.KgToQuintals(deal.WeightKg)
		acc.DealCount++
		acc.WeightKg += deal.WeightKg
		acc.BaseAmount += deal.BaseAmount
		acc.GSTAmount += deal.GSTAmount
		acc.TotalAmount += deal.TotalAmount
		acc.prices = append(acc.prices, utils.PricedItem{
			Price:  utils.CalculatePricePerQuintal(deal.BaseAmount, quintals),
			Weight: quintals,
		})
	}

	report := &models.PeriodReport{
		MillID:    millID,
		Period:    period,
		Purchases: []models.CommoditySummary{},
		Sales:     []models.CommoditySummary{},
	}

	for _, acc := range groups {
		summary := acc.CommoditySummary
		summary.WeightKg = utils.RoundTo2Decimals(summary.WeightKg)
		summary.WeightQuintals = utils.RoundTo2Decimals(utils.KgToQuintals(summary.WeightKg))
		summary.WeightTons = utils.RoundTo2Decimals(utils.QuintalsToTons(utils.KgToQuintals(summary.WeightKg)))
		summary.BaseAmount = utils.RoundTo2Decimals(summary.BaseAmount)
		summary.GSTAmount = utils.RoundTo2Decimals(summary.GSTAmount)
		summary.TotalAmount = utils.RoundTo2Decimals(summary.TotalAmount)
		summary.AveragePricePerQuintal = utils.CalculateAveragePrice(acc.prices)

		if summary.DealType == utils.DealTypePurchase {
			report.Purchases = append(report.Purchases, summary)
		} else {
			report.Sales = append(report.Sales, summary)
		}
	}
	sortSummaries(report.Purchases)
	sortSummaries(report.Sales)

	report.PurchaseTotals = totalSummaries(report.Purchases)
	report.SaleTotals = totalSummaries(report.Sales)
	report.ProfitLoss = utils.CalculateProfitLoss(report.SaleTotals.BaseAmount, report.PurchaseTotals.BaseAmount)

	for _, summary := range report.Purchases {
		if summary.Commodity == utils.CommodityPaddy {
			report.PaddyBoughtKg += summary.WeightKg
		}
	}
	for _, summary := range report.Sales {
		if summary.Commodity == utils.CommodityRice || summary.Commodity == utils.CommodityBrokenRice {
			report.RiceSoldKg += summary.WeightKg
		}
	}
	report.ExpectedRiceKg = utils.CalculateRiceOutput(report.PaddyBoughtKg)
	report.YieldPercentage = utils.CalculatePercentage(report.RiceSoldKg, report.ExpectedRiceKg)

	return report, nil
}

// sortSummaries orders summaries by the position of their commodity in utils.Commodities
func sortSummaries(summaries []models.CommoditySummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return slices.Index(utils.Commodities, summaries[i].Commodity) < slices.Index(utils.Commodities, summaries[j].Commodity)
	})
}

func totalSummaries(summaries []models.CommoditySummary) models.PeriodTotals {
	var totals models.PeriodTotals
	for _, summary := range summaries {
		totals.DealCount += summary.DealCount
		totals.WeightQuintals += summary.WeightQuintals
		totals.BaseAmount += summary.BaseAmount
		totals.GSTAmount += summary.GSTAmount
		totals.TotalAmount += summary.TotalAmount
	}

	totals.WeightQuintals = utils.RoundTo2Decimals(totals.WeightQuintals)
	totals.BaseAmount = utils.RoundTo2Decimals(totals.BaseAmount)
	totals.GSTAmount = utils.RoundTo2Decimals(totals.GSTAmount)
	totals.TotalAmount = utils.RoundTo2Decimals(totals.TotalAmount)
	totals.FormattedTotal = utils.FormatCurrency(totals.TotalAmount)
	return totals
}

// PartyLedger computes what each party owes the mill, or is owed by it, over period.
// Outstanding is (sales - received) - (purchases - paid).
func (s *ReportService) PartyLedger(ctx context.Context, millID string, period models.ReportPeriod) (*models.PartyLedger, error) {
	deals, err := s.deals.ListDeals(ctx, models.DealFilter{MillID: millID, From: period.Start, To: period.End})
	if err != nil {
		log.Error().Err(err).Str("mill_id", millID).Msg("failed to load deals for ledger")
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	txns, err := s.transactions.ListTransactions(ctx, models.TransactionFilter{MillID: millID, From: period.Start, To: period.End})
	if err != nil {
		log.Error().Err(err).Str("mill_id", millID).Msg("failed to load transactions for ledger")
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	balances := make(map[string]*models.PartyBalance)
	party := func(name string) *models.PartyBalance {
		key := utils.NormalizeName(name)
		balance, ok := balances[key]
		if !ok {
			balance = &models.PartyBalance{PartyName: utils.FormatNameForDisplay(name)}
			balances[key] = balance
		}
		return balance
	}

	for _, deal := range deals {
		balance := party(deal.PartyName)
		if deal.DealType == utils.DealTypeSale {
			balance.SalesBilled += deal.TotalAmount
		} else {
			balance.PurchasesBilled += deal.TotalAmount
		}
	}
	for _, txn := range txns {
		balance := party(txn.PartyName)
		if txn.Direction == utils.DirectionReceived {
			balance.Received += txn.Amount
		} else {
			balance.Paid += txn.Amount
		}
	}

	ledger := &models.PartyLedger{
		MillID:  millID,
		Period:  period,
		Parties: make([]models.PartyBalance, 0, len(balances)),
	}
	for _, balance := range balances {
		balance.SalesBilled = utils.RoundTo2Decimals(balance.SalesBilled)
		balance.PurchasesBilled = utils.RoundTo2Decimals(balance.PurchasesBilled)
		balance.Received = utils.RoundTo2Decimals(balance.Received)
		balance.Paid = utils.RoundTo2Decimals(balance.Paid)
		balance.Outstanding = utils.RoundTo2Decimals(
			(balance.SalesBilled - balance.Received) - (balance.PurchasesBilled - balance.Paid))
		balance.FormattedOutstanding = utils.FormatCurrency(balance.Outstanding)

		if balance.Outstanding > 0 {
			ledger.TotalReceivable += balance.Outstanding
		} else {
			ledger.TotalPayable -= balance.Outstanding
		}
		ledger.Parties = append(ledger.Parties, *balance)
	}

	sort.Slice(ledger.Parties, func(i, j int) bool {
		return ledger.Parties[i].PartyName < ledger.Parties[j].PartyName
	})
	ledger.TotalReceivable = utils.RoundTo2Decimals(ledger.TotalReceivable)
	ledger.TotalPayable = utils.RoundTo2Decimals(ledger.TotalPayable)

	return ledger, nil
}
