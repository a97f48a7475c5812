package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triptally/triptally/internal/models"
	"github.com/triptally/triptally/internal/service"
)

// balanceHandler handles HTTP requests for computed balances and recorded
// settlements.
type balanceHandler struct {
	balances *service.BalanceService
}

func registerBalanceRoutes(rg *gin.RouterGroup, balances *service.BalanceService) {
	h := &balanceHandler{balances: balances}

	rg.GET("/trips/:trip_id/balances", h.getBalances)
	rg.POST("/trips/:trip_id/settlements", h.recordSettlement)
	rg.GET("/trips/:trip_id/settlements", h.listSettlements)
	rg.DELETE("/settlements/:settlement_id", h.deleteSettlement)
}

func (h *balanceHandler) getBalances(c *gin.Context) {
	tb, err := h.balances.CalculateBalances(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		slog.Warn("getBalances failed", "trip_id", c.Param("trip_id"), "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripBalancesResponse(tb.Trip, tb.Result))
}

func (h *balanceHandler) recordSettlement(c *gin.Context) {
	var req settlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlement, err := h.balances.RecordSettlement(c.Request.Context(), &models.Settlement{
		TripID: c.Param("trip_id"),
		FromID: req.FromID,
		ToID:   req.ToID,
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		slog.Warn("recordSettlement failed", "trip_id", c.Param("trip_id"), "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSettlementResponse(settlement))
}

func (h *balanceHandler) listSettlements(c *gin.Context) {
	settlements, err := h.balances.ListSettlements(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]settlementResponse, len(settlements))
	for i, s := range settlements {
		out[i] = toSettlementResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"settlements": out})
}

func (h *balanceHandler) deleteSettlement(c *gin.Context) {
	if err := h.balances.DeleteSettlement(c.Request.Context(), c.Param("settlement_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
