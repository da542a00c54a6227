package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// CalculateDeal prices a deal without storing it
func CalculateDeal(c *gin.Context) {
	var request models.DealCalculationRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	result, err := handlerServices.CalculationService.CalculateDeal(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// EstimateMilling estimates the output of a paddy lot
func EstimateMilling(c *gin.Context) {
	var request models.MillingEstimateRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	result, err := handlerServices.CalculationService.EstimateMilling(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// ConvertWeight converts between kg, quintal and ton
func ConvertWeight(c *gin.Context) {
	var request models.ConvertWeightRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	result, err := handlerServices.CalculationService.ConvertWeight(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// CalculateGST applies or extracts GST
func CalculateGST(c *gin.Context) {
	var request models.GSTRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	result, err := handlerServices.CalculationService.CalculateGST(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// CalculateProfitLoss compares a selling price against a cost price
func CalculateProfitLoss(c *gin.Context) {
	var request models.ProfitLossRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	utils.HandleSuccess(c, handlerServices.CalculationService.ProfitLoss(&request))
}

// AmountToWords spells an amount in Indian rupees
func AmountToWords(c *gin.Context) {
	var request models.WordsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	result, err := handlerServices.CalculationService.Words(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}
