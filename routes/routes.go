package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/ricemill-backend/handlers"
	"github.com/fadhlanhapp/ricemill-backend/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, services *handlers.HandlerServices) {
	handlers.InitHandlers(services)

	router.GET("/health", handlers.Health)

	v1 := router.Group("/api/v1")
	{
		// Stateless calculators
		calculate := v1.Group("/calculate")
		calculate.POST("/deal", handlers.CalculateDeal)
		calculate.POST("/milling", handlers.EstimateMilling)
		calculate.POST("/convert", handlers.ConvertWeight)
		calculate.POST("/gst", handlers.CalculateGST)
		calculate.POST("/profit-loss", handlers.CalculateProfitLoss)
		calculate.POST("/words", handlers.AmountToWords)

		// Mill records
		mill := v1.Group("", middleware.RequireMill())

		mill.POST("/deals", handlers.CreateDeal)
		mill.GET("/deals", handlers.ListDeals)
		mill.GET("/deals/:id", handlers.GetDeal)
		mill.DELETE("/deals/:id", handlers.RemoveDeal)

		mill.POST("/transactions", handlers.CreateTransaction)
		mill.GET("/transactions", handlers.ListTransactions)
		mill.DELETE("/transactions/:id", handlers.RemoveTransaction)

		mill.GET("/reports/summary", handlers.GetPeriodReport)
		mill.GET("/reports/ledger", handlers.GetPartyLedger)
		mill.GET("/reports/export", handlers.ExportReport)
	}
}
