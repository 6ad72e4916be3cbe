package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campus-coffee-backend/internal/address"
	"campus-coffee-backend/internal/model"
)

// AddressPayload carries the address with the free-form house number string
// (e.g. "21a"); the split form is internal to persistence.
type AddressPayload struct {
	Street      string `json:"street" binding:"required"`
	HouseNumber string `json:"houseNumber" binding:"required"`
	PostalCode  string `json:"postalCode" binding:"required"`
	City        string `json:"city" binding:"required"`
}

// PosRequest is the write payload for creating or updating a pos.
type PosRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Type        string         `json:"type" binding:"required"`
	Campus      string         `json:"campus" binding:"required"`
	Address     AddressPayload `json:"address" binding:"required"`
}

// PosResponse is the read shape of a pos.
type PosResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Campus      string         `json:"campus"`
	Address     AddressPayload `json:"address"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// toModel converts the request into a domain pos, splitting the house number.
// Enum values are passed through as-is; Validate reports unknown members so
// the caller gets one consistent error shape for every field.
func (r PosRequest) toModel(id int64) (model.Pos, error) {
	split, err := address.Split(r.Address.HouseNumber)
	if err != nil {
		return model.Pos{}, err
	}

	return model.Pos{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Type:        model.PosType(r.Type),
		Campus:      model.Campus(r.Campus),
		Address: model.Address{
			Street:            r.Address.Street,
			HouseNumberDigits: split.Digits,
			HouseNumberSuffix: split.Suffix,
			PostalCode:        r.Address.PostalCode,
			City:              r.Address.City,
		},
	}, nil
}

func toResponse(p model.Pos) PosResponse {
	return PosResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        string(p.Type),
		Campus:      string(p.Campus),
		Address: AddressPayload{
			Street: p.Address.Street,
			HouseNumber: address.Merge(address.SplitHouseNumber{
				Digits: p.Address.HouseNumberDigits,
				Suffix: p.Address.HouseNumberSuffix,
			}),
			PostalCode: p.Address.PostalCode,
			City:       p.Address.City,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toResponses(records []model.Pos) []PosResponse {
	responses := make([]PosResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, toResponse(p))
	}
	return responses
}

// ListPos handles GET /api/pos with an optional campus filter.
func (h *Handler) ListPos(c *gin.Context) {
	campusParam := c.Query("campus")

	var (
		records []model.Pos
		err     error
	)
	if campusParam == "" {
		records, err = h.svc.GetAll(c.Request.Context())
	} else {
		var campus model.Campus
		campus, err = model.ParseCampus(campusParam)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		records, err = h.svc.GetByCampus(c.Request.Context(), campus)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(records))
}

// GetPos handles GET /api/pos/:id.
func (h *Handler) GetPos(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid pos ID"})
		return
	}

	pos, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(pos))
}

// CreatePos handles POST /api/pos.
func (h *Handler) CreatePos(c *gin.Context) {
	var req PosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pos, err := req.toModel(0)
	if err != nil {
		h.writeError(c, err)
		return
	}

	created, err := h.svc.Upsert(c.Request.Context(), pos)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(created))
}

// UpdatePos handles PUT /api/pos/:id.
func (h *Handler) UpdatePos(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid pos ID"})
		return
	}

	var req PosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pos, err := req.toModel(id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	updated, err := h.svc.Upsert(c.Request.Context(), pos)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(updated))
}
