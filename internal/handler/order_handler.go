package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/worldwidesim/esim-store/internal/dto"
	"github.com/worldwidesim/esim-store/internal/repository"
)

// OrderHandler exposes the order store for support tooling: which eSIMs a
// user bought and when.
type OrderHandler struct {
	orders repository.OrderStore
}

func NewOrderHandler(orders repository.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	results := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		results[i] = dto.OrderResponse{
			ID:          o.ID,
			UserID:      o.UserID,
			OrderNo:     o.OrderNo,
			Country:     o.Country,
			PackageName: o.PackageName,
			CreatedAt:   o.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{Orders: results, Total: len(results)})
}
