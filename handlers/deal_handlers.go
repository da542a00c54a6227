package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/ricemill-backend/middleware"
	"github.com/fadhlanhapp/ricemill-backend/models"
	"github.com/fadhlanhapp/ricemill-backend/utils"
)

// CreateDeal records a purchase or sale
func CreateDeal(c *gin.Context) {
	var request models.CreateDealRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.BindingError(err))
		return
	}

	deal, err := handlerServices.DealService.CreateDeal(c.Request.Context(), middleware.MillID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleCreated(c, deal)
}

// ListDeals lists deals filtered by type, commodity (comma separated), party and date range
func ListDeals(c *gin.Context) {
	from, to, err := utils.GetDateRangeFromQuery(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filter := models.DealFilter{
		MillID:   middleware.MillID(c),
		DealType: c.Query("type"),
		Party:    c.Query("party"),
		From:     from,
		To:       to,
	}
	if commodity := c.Query("commodity"); commodity != "" {
		for _, item := range strings.Split(commodity, ",") {
			if item = strings.TrimSpace(item); item != "" {
				filter.Commodities = append(filter.Commodities, item)
			}
		}
	}

	deals, err := handlerServices.DealService.ListDeals(c.Request.Context(), filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, deals)
}

// GetDeal returns a single deal
func GetDeal(c *gin.Context) {
	deal, err := handlerServices.DealService.GetDeal(c.Request.Context(), middleware.MillID(c), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, deal)
}

// RemoveDeal deletes a deal
func RemoveDeal(c *gin.Context) {
	if err := handlerServices.DealService.RemoveDeal(c.Request.Context(), middleware.MillID(c), c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Deal removed successfully"})
}
