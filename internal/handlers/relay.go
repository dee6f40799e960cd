package handlers

import (
	"errors"
	"net/http"

	"ml_relay/internal/models"
	"ml_relay/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK        = "ok"
	livenessMessage = "ML API Client is running. Go to /static/index.html to use the manual sender."

	errInvalidBodyPref = "invalid body: "
)

// @Summary      Liveness message
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": livenessMessage})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Relay a sensor reading to the ML backend
// @Description  Projects the reading down to the prediction fields, POSTs it downstream and relays the JSON response.
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        body  body      models.CriticalReading  true  "Sensor reading"
// @Success      200   {object}  map[string]interface{}  "downstream response, verbatim"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /send_critical_data [post]
func (h *Handler) sendCriticalData(c *gin.Context) {
	var reading models.CriticalReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": errInvalidBodyPref + err.Error()})
		return
	}

	result, err := h.services.Relay.Send(c.Request.Context(), reading)
	if err != nil {
		h.relayError(c, reading, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// relayError translates a relay failure into its HTTP response. Anything
// that is not a *RelayError gets the generic 500 mapping.
func (h *Handler) relayError(c *gin.Context, reading models.CriticalReading, err error) {
	var relayErr *service.RelayError
	if !errors.As(err, &relayErr) {
		relayErr = &service.RelayError{Status: http.StatusInternalServerError, Detail: err.Error()}
	}
	if h.log != nil {
		h.log.Errorw("relay_failed",
			"machine_id", reading.MachineID,
			"status", relayErr.Status,
			"detail", relayErr.Detail,
			"request_id", c.GetString(requestIDKey),
		)
	}
	c.JSON(relayErr.Status, gin.H{"detail": relayErr.Detail})
}
