package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"campus-coffee-backend/internal/address"
	"campus-coffee-backend/internal/model"
	"campus-coffee-backend/internal/osm"
	"campus-coffee-backend/internal/service"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc *service.PosService
	log zerolog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(svc *service.PosService, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// writeError maps a domain error onto an HTTP status and JSON body.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		verr model.ValidationError
		dup  model.DuplicateNameError
		nf   model.NotFoundError
		onf  osm.NodeNotFoundError
	)

	switch {
	case errors.Is(err, address.ErrInvalidHouseNumber):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &dup):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": dup.Error()})
	case errors.As(err, &nf):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &onf):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": onf.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
