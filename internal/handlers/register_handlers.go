// Package handlers exposes the trip, expense, and balance services over a
// JSON REST API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triptally/triptally/internal/apperrors"
	"github.com/triptally/triptally/internal/engine"
	"github.com/triptally/triptally/internal/service"
)

// Services bundles the application services the handlers depend on.
type Services struct {
	Trips    *service.TripService
	Expenses *service.ExpenseService
	Balances *service.BalanceService
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, services Services) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerTripRoutes(v1, services.Trips)
	registerExpenseRoutes(v1, services.Expenses)
	registerBalanceRoutes(v1, services.Balances)
}

// respondError maps service errors onto HTTP statuses. Split validation
// failures get 422 with the offending expense identified, so callers can
// tell users which expense to fix.
func respondError(c *gin.Context, err error) {
	var splitErr *engine.SplitError
	if errors.As(err, &splitErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       splitErr.Reason,
			"expenseId":   splitErr.ExpenseID,
			"description": splitErr.Description,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
