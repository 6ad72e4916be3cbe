package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ImportOsmNode handles POST /api/pos/import/osm/:node_id.
func (h *Handler) ImportOsmNode(c *gin.Context) {
	nodeID, err := strconv.ParseInt(c.Param("node_id"), 10, 64)
	if err != nil || nodeID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid OSM node ID"})
		return
	}

	pos, err := h.svc.ImportFromOsm(c.Request.Context(), nodeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(pos))
}
