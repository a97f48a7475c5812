package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triptally/triptally/internal/service"
)

// tripHandler handles HTTP requests for trips and their rosters.
type tripHandler struct {
	trips *service.TripService
}

func registerTripRoutes(rg *gin.RouterGroup, trips *service.TripService) {
	h := &tripHandler{trips: trips}

	tripGroup := rg.Group("/trips")
	{
		tripGroup.POST("", h.createTrip)
		tripGroup.GET("", h.listTrips)
		tripGroup.GET("/:trip_id", h.getTrip)
		tripGroup.DELETE("/:trip_id", h.deleteTrip)
		tripGroup.POST("/:trip_id/participants", h.addParticipants)
	}
}

func (h *tripHandler) createTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.trips.CreateTrip(c.Request.Context(), req.Name, req.Currency, req.Participants)
	if err != nil {
		slog.Warn("createTrip failed", "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripResponse(trip))
}

func (h *tripHandler) listTrips(c *gin.Context) {
	trips, err := h.trips.ListTrips(c.Request.Context())
	if err != nil {
		slog.Error("listTrips failed", "error", err)
		respondError(c, err)
		return
	}

	out := make([]tripResponse, len(trips))
	for i, trip := range trips {
		out[i] = toTripResponse(trip)
	}
	c.JSON(http.StatusOK, gin.H{"trips": out})
}

func (h *tripHandler) getTrip(c *gin.Context) {
	trip, err := h.trips.GetTrip(c.Request.Context(), c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(trip))
}

func (h *tripHandler) deleteTrip(c *gin.Context) {
	if err := h.trips.DeleteTrip(c.Request.Context(), c.Param("trip_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *tripHandler) addParticipants(c *gin.Context) {
	var req addParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.trips.AddParticipants(c.Request.Context(), c.Param("trip_id"), req.Names)
	if err != nil {
		slog.Warn("addParticipants failed", "trip_id", c.Param("trip_id"), "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(trip))
}
