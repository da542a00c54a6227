package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fadhlanhapp/ricemill-backend/repository"
	"github.com/fadhlanhapp/ricemill-backend/services"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	CalculationService *services.CalculationService
	DealService        *services.DealService
	TransactionService *services.TransactionService
	ReportService      *services.ReportService
	ExcelService       *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(deals services.DealStore, transactions services.TransactionStore) *HandlerServices {
	calculationService := services.NewCalculationService()
	dealService := services.NewDealService(deals, calculationService)
	reportService := services.NewReportService(deals, transactions)
	return &HandlerServices{
		CalculationService: calculationService,
		DealService:        dealService,
		TransactionService: services.NewTransactionService(transactions),
		ReportService:      reportService,
		ExcelService:       services.NewExcelService(reportService, dealService),
	}
}

var handlerServices *HandlerServices

// NewDatabaseServices wires the handler services to the PostgreSQL repositories
func NewDatabaseServices(db *sql.DB) *HandlerServices {
	return NewHandlerServices(
		repository.NewDealRepository(db),
		repository.NewTransactionRepository(db),
	)
}

// InitHandlers initializes the handler services
func InitHandlers(hs *HandlerServices) {
	handlerServices = hs
}

// RegisterValidators installs the mill binding tags on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return utils.RegisterValidators(v)
}

// Health reports that the API is serving
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
