package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/airtickets/internal/domain"
	"github.com/Domenick1991/airtickets/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights/search", h.search)
	router.GET("/airports", h.listAirports)
	router.GET("/airports/:code", h.airportInfo)
}

func (h *FlightHandler) search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to cities are required"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	input := flights.SearchInput{
		DepartureCity: from,
		ArrivalCity:   to,
		DepartureDate: date,
	}
	if ret := c.Query("return_date"); ret != "" {
		returnDate, err := time.Parse("2006-01-02", ret)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "return_date must be YYYY-MM-DD"})
			return
		}
		input.ReturnDate = &returnDate
	}

	offers, err := h.service.Search(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *FlightHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *FlightHandler) airportInfo(c *gin.Context) {
	airport, err := h.service.AirportInfo(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "airport not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airport)
}
