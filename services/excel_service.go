package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

const (
	summarySheet = "Summary"
	dealsSheet   = "Deals"
	ledgerSheet  = "Ledger"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	reportService *ReportService
	dealService   *DealService
	now           func() time.Time
}

// NewExcelService creates a new Excel service
func NewExcelService(reportService *ReportService, dealService *DealService) *ExcelService {
	return &ExcelService{
		reportService: reportService,
		dealService:   dealService,
		now:           time.Now,
	}
}

// ExportMillReport gathers a mill's report, deals and ledger for period and renders them as a workbook
func (s *ExcelService) ExportMillReport(ctx context.Context, millID string, period models.ReportPeriod) (*excelize.File, string, error) {
	report, err := s.reportService.PeriodReport(ctx, millID, period)
	if err != nil {
		return nil, "", err
	}

	deals, err := s.dealService.ListDeals(ctx, models.DealFilter{MillID: millID, From: period.Start, To: period.End})
	if err != nil {
		return nil, "", err
	}

	ledger, err := s.reportService.PartyLedger(ctx, millID, period)
	if err != nil {
		return nil, "", err
	}

	f, err := s.ExportPeriodReport(report, deals, ledger)
	if err != nil {
		return nil, "", utils.NewInternalError(fmt.Sprintf("failed to build workbook: %v", err))
	}
	return f, s.reportFileName(millID, period), nil
}

// ExportPeriodReport renders the Summary, Deals and Ledger sheets
func (s *ExcelService) ExportPeriodReport(report *models.PeriodReport, deals []*models.Deal, ledger *models.PartyLedger) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.createSummarySheet(f, report); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := s.createDealsSheet(f, deals); err != nil {
		return nil, fmt.Errorf("failed to create deals sheet: %w", err)
	}
	if err := s.createLedgerSheet(f, ledger); err != nil {
		return nil, fmt.Errorf("failed to create ledger sheet: %w", err)
	}

	// Delete the default sheet if it exists
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	return f, nil
}

// reportFileName builds <mill>_Report_<from>_<to>.xlsx; an open start reads "start" and an open end is today
func (s *ExcelService) reportFileName(millID string, period models.ReportPeriod) string {
	from := "start"
	if period.Start != nil {
		from = period.Start.Format("2006-01-02")
	}
	to := s.now().Format("2006-01-02")
	if period.End != nil {
		to = period.End.Format("2006-01-02")
	}
	return fmt.Sprintf("%s_Report_%s_%s.xlsx", utils.CleanFileName(millID), from, to)
}

// createSummarySheet creates Sheet 1: per commodity totals followed by the period figures
func (s *ExcelService) createSummarySheet(f *excelize.File, report *models.PeriodReport) error {
	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headers := []string{"Type", "Commodity", "Deals", "Weight (qtl)", "Base Amount", "GST", "Total", "Avg Price/qtl"}
	if err := writeHeader(f, summarySheet, headers); err != nil {
		return err
	}

	row := 2
	for _, summary := range append(append([]models.CommoditySummary{}, report.Purchases...), report.Sales...) {
		values := []interface{}{
			utils.Capitalize(summary.DealType),
			utils.ToTitleCase(summary.Commodity),
			summary.DealCount,
			summary.WeightQuintals,
			summary.BaseAmount,
			summary.GSTAmount,
			summary.TotalAmount,
			summary.AveragePricePerQuintal,
		}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}

	// Period figures
	row++
	figures := []struct {
		label string
		value interface{}
	}{
		{"Period", report.Period.Label},
		{"Purchases Total", report.PurchaseTotals.TotalAmount},
		{"Sales Total", report.SaleTotals.TotalAmount},
		{"Profit/Loss", report.ProfitLoss.Amount},
		{"Profit/Loss %", report.ProfitLoss.Percentage},
		{"Paddy Bought (kg)", report.PaddyBoughtKg},
		{"Expected Rice (kg)", report.ExpectedRiceKg},
		{"Rice Sold (kg)", report.RiceSoldKg},
		{"Yield %", report.YieldPercentage},
	}
	for _, figure := range figures {
		values := []interface{}{figure.label, figure.value}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}

	return setColWidths(f, summarySheet, colWidth{"A", "B", 20}, colWidth{"C", "H", 15})
}

// createDealsSheet creates Sheet 2: one row per deal
func (s *ExcelService) createDealsSheet(f *excelize.File, deals []*models.Deal) error {
	if _, err := f.NewSheet(dealsSheet); err != nil {
		return err
	}

	headers := []string{"Date", "Invoice", "Type", "Commodity", "Party", "Vehicle", "Bags",
		"Weight (kg)", "Rate/qtl", "GST %", "Base Amount", "GST", "Total"}
	if err := writeHeader(f, dealsSheet, headers); err != nil {
		return err
	}

	for i, deal := range deals {
		values := []interface{}{
			utils.FormatDate(deal.DealDate),
			deal.InvoiceNo,
			utils.Capitalize(deal.DealType),
			utils.ToTitleCase(deal.Commodity),
			deal.PartyName,
			deal.VehicleNo,
			deal.Bags,
			deal.WeightKg,
			deal.PricePerQuintal,
			deal.GSTRate,
			deal.BaseAmount,
			deal.GSTAmount,
			deal.TotalAmount,
		}
		if err := f.SetSheetRow(dealsSheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}

	return setColWidths(f, dealsSheet, colWidth{"A", "A", 12}, colWidth{"B", "B", 20}, colWidth{"E", "E", 25})
}

// createLedgerSheet creates Sheet 3: party balances
func (s *ExcelService) createLedgerSheet(f *excelize.File, ledger *models.PartyLedger) error {
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return err
	}

	headers := []string{"Party", "Sales", "Purchases", "Received", "Paid", "Outstanding"}
	if err := writeHeader(f, ledgerSheet, headers); err != nil {
		return err
	}

	row := 2
	for _, party := range ledger.Parties {
		values := []interface{}{
			party.PartyName,
			party.SalesBilled,
			party.PurchasesBilled,
			party.Received,
			party.Paid,
			party.Outstanding,
		}
		if err := f.SetSheetRow(ledgerSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}

	row++
	totals := [][]interface{}{
		{"Total Receivable", nil, nil, nil, nil, ledger.TotalReceivable},
		{"Total Payable", nil, nil, nil, nil, ledger.TotalPayable},
	}
	for i := range totals {
		if err := f.SetSheetRow(ledgerSheet, fmt.Sprintf("A%d", row+i), &totals[i]); err != nil {
			return err
		}
	}

	return setColWidths(f, ledgerSheet, colWidth{"A", "A", 25}, colWidth{"B", "F", 15})
}

// writeHeader writes a bold, shaded header row
func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)
}

type colWidth struct {
	from, to string
	width    float64
}

func setColWidths(f *excelize.File, sheet string, widths ...colWidth) error {
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return nil
}
