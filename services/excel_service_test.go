package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

func newTestExcelService(deals *fakeDealStore, txns *fakeTransactionStore) *ExcelService {
	reports := NewReportService(deals, txns)
	service := NewExcelService(reports, NewDealService(deals, NewCalculationService()))
	service.now = func() time.Time { return reportRef }
	return service
}

func TestExcelService_ExportMillReport(t *testing.T) {
	deal := reportDeal(utils.DealTypePurchase, utils.CommodityPaddy, "Farmer A", 1000, 2000, 0)
	deal.InvoiceNo = "P/2023-24/ABC123"
	deals := &fakeDealStore{deals: []*models.Deal{deal}}
	txns := &fakeTransactionStore{}
	service := newTestExcelService(deals, txns)

	period, err := service.reportService.ResolvePeriod(PeriodFY, reportRef, "", "")
	require.NoError(t, err)

	f, filename, err := service.ExportMillReport(context.Background(), "Sri Lakshmi Mill", period)
	require.NoError(t, err)
	assert.Equal(t, "Sri_Lakshmi_Mill_Report_2023-04-01_2024-03-31.xlsx", filename)

	// Read the workbook back from its serialized form
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{summarySheet, dealsSheet, ledgerSheet}, book.GetSheetList())

	header, err := book.GetCellValue(dealsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	invoice, err := book.GetCellValue(dealsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "P/2023-24/ABC123", invoice)

	commodity, err := book.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Paddy", commodity)

	party, err := book.GetCellValue(ledgerSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Farmer A", party)

	outstanding, err := book.GetCellValue(ledgerSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "-20000", outstanding)

	totalLabel, err := book.GetCellValue(ledgerSheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total Payable", totalLabel)

	totalPayable, err := book.GetCellValue(ledgerSheet, "F5")
	require.NoError(t, err)
	assert.Equal(t, "20000", totalPayable)
}

func TestExcelService_SheetWriteErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeHeader(f, "Missing", []string{"Party"})
	assert.Error(t, err)

	err = setColWidths(f, "Sheet1", colWidth{"A", "A", 300})
	assert.Error(t, err)

	assert.NoError(t, setColWidths(f, "Sheet1", colWidth{"A", "B", 20}))
}

func TestExcelService_ReportFileName_OpenBounds(t *testing.T) {
	service := newTestExcelService(&fakeDealStore{}, &fakeTransactionStore{})

	name := service.reportFileName("mill:1", models.ReportPeriod{Name: PeriodCustom})
	assert.Equal(t, "mill_1_Report_start_2024-02-15.xlsx", name)
}
