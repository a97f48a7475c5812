package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triptally/triptally/internal/service"
)

// expenseHandler handles HTTP requests for expenses.
type expenseHandler struct {
	expenses *service.ExpenseService
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenses *service.ExpenseService) {
	h := &expenseHandler{expenses: expenses}

	rg.POST("/trips/:trip_id/expenses", h.createExpense)
	rg.GET("/trips/:trip_id/expenses", h.listExpenses)

	expenseGroup := rg.Group("/expenses")
	{
		expenseGroup.GET("/:expense_id", h.getExpense)
		expenseGroup.PUT("/:expense_id", h.updateExpense)
		expenseGroup.DELETE("/:expense_id", h.deleteExpense)
	}
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenses.CreateExpense(c.Request.Context(), req.toModel(c.Param("trip_id"), ""))
	if err != nil {
		slog.Warn("createExpense failed", "trip_id", c.Param("trip_id"), "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	expenses, err := h.expenses.ListExpensesByTrip(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i := range expenses {
		out[i] = toExpenseResponse(&expenses[i])
	}
	c.JSON(http.StatusOK, gin.H{"expenses": out})
}

func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenses.GetExpense(c.Request.Context(), c.Param("expense_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(expense))
}

func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// TripID is resolved from the stored expense by the service.
	expense, err := h.expenses.UpdateExpense(c.Request.Context(), req.toModel("", c.Param("expense_id")))
	if err != nil {
		slog.Warn("updateExpense failed", "expense_id", c.Param("expense_id"), "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(expense))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	if err := h.expenses.DeleteExpense(c.Request.Context(), c.Param("expense_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
