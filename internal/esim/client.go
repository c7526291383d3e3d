// Package esim is the client for the eSIM Access open API, the external
// system that sells and issues eSIM profiles. It is a thin typed wrapper:
// filtering, classification and pricing live in the service layer.
package esim

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/worldwidesim/esim-store/internal/model"
)

const requestTimeout = 10 * time.Second

// APIError is a non-success envelope returned by the provisioning API.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("esim api error %s: %s", e.Code, e.Message)
}

type Client struct {
	baseURL    string
	accessCode string
	httpClient *http.Client
}

func NewClient(baseURL, accessCode string) *Client {
	return &Client{
		baseURL:    baseURL,
		accessCode: accessCode,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type envelope struct {
	Success   bool            `json:"success"`
	ErrorCode string          `json:"errorCode"`
	ErrorMsg  string          `json:"errorMsg"`
	Obj       json.RawMessage `json:"obj"`
}

func (c *Client) post(ctx context.Context, path string, payload, obj any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("RT-AccessCode", c.accessCode)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	if !env.Success {
		return &APIError{Code: env.ErrorCode, Message: env.ErrorMsg}
	}
	if obj != nil && len(env.Obj) > 0 {
		if err := json.Unmarshal(env.Obj, obj); err != nil {
			return fmt.Errorf("decode %s obj: %w", path, err)
		}
	}
	return nil
}

// ListPackages returns the raw rate-plan offers for a location code,
// unfiltered and unsorted.
func (c *Client) ListPackages(ctx context.Context, countryCode string) ([]model.Offer, error) {
	payload := map[string]string{
		"locationCode": countryCode,
		"type":         "",
		"packageCode":  "",
		"slug":         "",
		"iccid":        "",
	}

	var obj struct {
		PackageList []model.Offer `json:"packageList"`
	}
	if err := c.post(ctx, "/package/list", payload, &obj); err != nil {
		return nil, err
	}
	return obj.PackageList, nil
}

// OrderProfile places an order for a single package and returns the order
// number. periodNum > 0 selects the number of days for a daily package.
func (c *Client) OrderProfile(ctx context.Context, packageCode string, price int64, count int, periodNum int) (string, error) {
	packageInfo := map[string]any{
		"packageCode": packageCode,
		"count":       count,
		"price":       price,
	}
	if periodNum > 0 {
		packageInfo["periodNum"] = periodNum
	}

	transactionID := newTransactionID()
	payload := map[string]any{
		"transactionId":   transactionID,
		"amount":          price * int64(count),
		"packageInfoList": []map[string]any{packageInfo},
	}

	var obj struct {
		OrderNo string `json:"orderNo"`
	}
	if err := c.post(ctx, "/esim/order", payload, &obj); err != nil {
		return "", err
	}

	log.Info().
		Str("transaction_id", transactionID).
		Str("order_no", obj.OrderNo).
		Str("package_code", packageCode).
		Msg("order placed")
	return obj.OrderNo, nil
}

// QueryOrder returns the eSIM profiles provisioned for an order. An empty
// slice means the order is not ready yet.
func (c *Client) QueryOrder(ctx context.Context, orderNo string) ([]model.Profile, error) {
	payload := map[string]any{
		"orderNo": orderNo,
		"iccid":   "",
		"pager": map[string]int{
			"pageNum":  1,
			"pageSize": 10,
		},
	}

	var obj struct {
		EsimList []model.Profile `json:"esimList"`
	}
	if err := c.post(ctx, "/esim/query", payload, &obj); err != nil {
		return nil, err
	}
	return obj.EsimList, nil
}

// CancelProfile cancels a not-yet-activated profile, addressed by
// transaction number (preferred) or ICCID.
func (c *Client) CancelProfile(ctx context.Context, esimTranNo, iccid string) error {
	payload, err := profileRef(esimTranNo, iccid)
	if err != nil {
		return err
	}
	return c.post(ctx, "/esim/cancel", payload, nil)
}

// SuspendProfile suspends an active profile, addressed by transaction
// number (preferred) or ICCID.
func (c *Client) SuspendProfile(ctx context.Context, esimTranNo, iccid string) error {
	payload, err := profileRef(esimTranNo, iccid)
	if err != nil {
		return err
	}
	return c.post(ctx, "/esim/suspend", payload, nil)
}

func profileRef(esimTranNo, iccid string) (map[string]string, error) {
	switch {
	case esimTranNo != "":
		return map[string]string{"esimTranNo": esimTranNo}, nil
	case iccid != "":
		return map[string]string{"iccid": iccid}, nil
	default:
		return nil, fmt.Errorf("esimTranNo or iccid required")
	}
}

func newTransactionID() string {
	id := uuid.New()
	return "WWS-" + hex.EncodeToString(id[:])[:8]
}
