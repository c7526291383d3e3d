package model

import (
	"time"
)

// Duration units used by the provisioning API.
const (
	UnitDay   = "DAY"
	UnitMonth = "MONTH"
)

// DataTypeDailyReset marks packages whose volume resets every day.
const DataTypeDailyReset = 2

// Offer is a purchasable data-plan line item as returned by the
// provisioning source. Offers are immutable snapshots; pricing and
// classification derive values, they never mutate the offer.
type Offer struct {
	Name         string `json:"name"`
	PackageCode  string `json:"packageCode"`
	Volume       int64  `json:"volume"`
	Duration     int    `json:"duration"`
	DurationUnit string `json:"durationUnit"`
	DataType     int    `json:"dataType"`
	// Price in source currency, fixed point with 4 implied decimals
	// (divide by 10000 for USD units).
	Price     int64  `json:"price"`
	Operators string `json:"operators,omitempty"`
}

// Profile is a provisioned eSIM inside an order.
type Profile struct {
	ActivationCode string `json:"ac"`
	QRCodeURL      string `json:"qrCodeUrl"`
	ICCID          string `json:"iccid"`
	Status         string `json:"status"`
	EsimTranNo     string `json:"esimTranNo,omitempty"`
}

// Order is the record persisted once per completed purchase.
type Order struct {
	ID          string    `json:"id,omitempty"`
	UserID      int64     `json:"user_id"`
	OrderNo     string    `json:"order_no"`
	Country     string    `json:"country"`
	PackageName string    `json:"package_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Country is a static name→ISO-code mapping entry.
type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Region groups countries under a display name. The country list is one
// ordered sequence; presentation paginates it.
type Region struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Countries []string `json:"countries"`
	Image     string   `json:"image,omitempty"`
}
