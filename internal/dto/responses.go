package dto

import (
	"time"
)

type OrderResponse struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	OrderNo     string    `json:"order_no"`
	Country     string    `json:"country"`
	PackageName string    `json:"package_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
