package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/ricemill-backend/middleware"
	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

func resolvePeriod(c *gin.Context) (models.ReportPeriod, error) {
	return handlerServices.ReportService.ResolvePeriod(c.Query("period"), time.Now(), c.Query("startDate"), c.Query("endDate"))
}

// GetPeriodReport returns the purchase and sale summary for a period
func GetPeriodReport(c *gin.Context) {
	period, err := resolvePeriod(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	report, err := handlerServices.ReportService.PeriodReport(c.Request.Context(), middleware.MillID(c), period)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, report)
}

// GetPartyLedger returns party balances for a period
func GetPartyLedger(c *gin.Context) {
	period, err := resolvePeriod(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ledger, err := handlerServices.ReportService.PartyLedger(c.Request.Context(), middleware.MillID(c), period)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, ledger)
}

// ExportReport exports a period's summary, deals and ledger to Excel format
func ExportReport(c *gin.Context) {
	period, err := resolvePeriod(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	excelFile, filename, err := handlerServices.ExcelService.ExportMillReport(c.Request.Context(), middleware.MillID(c), period)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer excelFile.Close()

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to write Excel file"))
		return
	}
}
