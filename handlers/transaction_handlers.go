package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/ricemill-backend/middleware"
	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// CreateTransaction records money received from or paid to a party
func CreateTransaction(c *gin.Context) {
	var request models.CreateTransactionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	txn, err := handlerServices.TransactionService.CreateTransaction(c.Request.Context(), middleware.MillID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleCreated(c, txn)
}

// ListTransactions lists transactions filtered by party, direction and date range
func ListTransactions(c *gin.Context) {
	from, to, err := utils.GetDateRangeFromQuery(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	txns, err := handlerServices.TransactionService.ListTransactions(c.Request.Context(), models.TransactionFilter{
		MillID:    middleware.MillID(c),
		Party:     c.Query("party"),
		Direction: c.Query("direction"),
		From:      from,
		To:        to,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, txns)
}

// RemoveTransaction deletes a transaction
func RemoveTransaction(c *gin.Context) {
	if err := handlerServices.TransactionService.RemoveTransaction(c.Request.Context(), middleware.MillID(c), c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Transaction removed successfully"})
}
