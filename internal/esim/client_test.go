package esim

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path       string
	accessCode string
	body       map[string]any
}

func newTestClient(t *testing.T, status int, response string) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.accessCode = r.Header.Get("RT-AccessCode")
		_ = json.NewDecoder(r.Body).Decode(&captured.body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-access-code"), captured
}

func TestListPackages(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the package list", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, `{
			"success": true,
			"obj": {"packageList": [
				{"name": "Japan 1GB/Day", "packageCode": "JP1", "volume": 1073741824,
				 "duration": 7, "durationUnit": "DAY", "dataType": 2, "price": 50000}
			]}
		}`)

		offers, err := client.ListPackages(ctx, "JP")
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "JP1", offers[0].PackageCode)
		assert.Equal(t, int64(1073741824), offers[0].Volume)
		assert.Equal(t, int64(50000), offers[0].Price)

		assert.Equal(t, "/package/list", captured.path)
		assert.Equal(t, "test-access-code", captured.accessCode)
		assert.Equal(t, "JP", captured.body["locationCode"])
	})

	t.Run("api error envelope", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK,
			`{"success": false, "errorCode": "200010", "errorMsg": "invalid location"}`)

		_, err := client.ListPackages(ctx, "XX")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "200010", apiErr.Code)
		assert.Equal(t, "invalid location", apiErr.Message)
	})

	t.Run("http error", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusBadGateway, ``)
		_, err := client.ListPackages(ctx, "JP")
		assert.Error(t, err)
	})
}

func TestOrderProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("daily order carries periodNum and total amount", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK,
			`{"success": true, "obj": {"orderNo": "B23072619495854"}}`)

		orderNo, err := client.OrderProfile(ctx, "JP1", 150000, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, "B23072619495854", orderNo)

		assert.Equal(t, "/esim/order", captured.path)
		assert.Equal(t, float64(150000), captured.body["amount"])

		tranID, _ := captured.body["transactionId"].(string)
		assert.True(t, strings.HasPrefix(tranID, "WWS-"))
		assert.Len(t, tranID, len("WWS-")+8)

		infos, _ := captured.body["packageInfoList"].([]any)
		require.Len(t, infos, 1)
		info, _ := infos[0].(map[string]any)
		assert.Equal(t, "JP1", info["packageCode"])
		assert.Equal(t, float64(3), info["periodNum"])
	})

	t.Run("fixed order omits periodNum", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK,
			`{"success": true, "obj": {"orderNo": "B1"}}`)

		_, err := client.OrderProfile(ctx, "JP2", 120000, 1, 0)
		require.NoError(t, err)

		infos, _ := captured.body["packageInfoList"].([]any)
		require.Len(t, infos, 1)
		info, _ := infos[0].(map[string]any)
		_, hasPeriod := info["periodNum"]
		assert.False(t, hasPeriod)
	})
}

func TestQueryOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes provisioned profiles", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, `{
			"success": true,
			"obj": {"esimList": [
				{"iccid": "8944500000000000001", "ac": "LPA:1$rsp.example.com$XYZ",
				 "qrCodeUrl": "https://cdn.example.com/qr.png", "status": "GOT_RESOURCE"}
			]}
		}`)

		profiles, err := client.QueryOrder(ctx, "B1")
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "8944500000000000001", profiles[0].ICCID)
		assert.Equal(t, "LPA:1$rsp.example.com$XYZ", profiles[0].ActivationCode)

		assert.Equal(t, "/esim/query", captured.path)
		assert.Equal(t, "B1", captured.body["orderNo"])
	})

	t.Run("pending order is an empty list", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"success": true, "obj": {"esimList": []}}`)
		profiles, err := client.QueryOrder(ctx, "B1")
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}

func TestCancelAndSuspend(t *testing.T) {
	ctx := context.Background()

	t.Run("transaction number is preferred over iccid", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, `{"success": true}`)
		require.NoError(t, client.CancelProfile(ctx, "TRAN1", "894450001"))

		assert.Equal(t, "/esim/cancel", captured.path)
		assert.Equal(t, "TRAN1", captured.body["esimTranNo"])
		_, hasICCID := captured.body["iccid"]
		assert.False(t, hasICCID)
	})

	t.Run("iccid alone works", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, `{"success": true}`)
		require.NoError(t, client.SuspendProfile(ctx, "", "894450001"))

		assert.Equal(t, "/esim/suspend", captured.path)
		assert.Equal(t, "894450001", captured.body["iccid"])
	})

	t.Run("missing reference is rejected locally", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, `{"success": true}`)
		err := client.CancelProfile(ctx, "", "")
		require.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
		assert.Empty(t, captured.path, "no request should be sent")
	})
}
