package handlers

import (
	"net/http"
	"time"

	bookingRepo "nestcare/database/repository/booking"
	clientRepo "nestcare/database/repository/client"
	"nestcare/models"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler exposes client household profiles and their booking history.
type ClientHandler struct {
	Clients  clientRepo.ClientProfileRepository
	Bookings bookingRepo.BookingRepository
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(clients clientRepo.ClientProfileRepository, bookings bookingRepo.BookingRepository) *ClientHandler {
	return &ClientHandler{Clients: clients, Bookings: bookings}
}

// GetClientHandler returns a client profile by ID.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	id := c.Param("id")
	profile, err := h.Clients.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "client profile not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertClientHandler creates or replaces a client profile.
func (h *ClientHandler) UpsertClientHandler(c *gin.Context) {
	var profile models.ClientProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
		profile.CreatedAt = time.Now()
	}
	if err := h.Clients.Upsert(&profile); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save client profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteClientHandler removes a client profile.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Clients.Delete(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "client profile not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetClientBookingsHandler lists a client's bookings, newest first.
func (h *ClientHandler) GetClientBookingsHandler(c *gin.Context) {
	id := c.Param("id")
	bookings, err := h.Bookings.GetByClient(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
