//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.GatewayConfig{
		BaseURL:          srv.URL,
		Timeout:          2 * time.Second,
		BreakerThreshold: 10,
	}
	return gateway.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestEnvelopeDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("room list maps into domain rooms", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rooms/all-available-rooms", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{
				"statusCode": 200,
				"roomList": []map[string]any{
					{"id": 7, "roomType": "Deluxe King", "roomPrice": 199.0,
						"roomDescription": "desc", "roomPhotoUrl": "/img.jpg"},
				},
			})
		})

		rooms, err := client.AvailableRooms(ctx)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, int64(7), rooms[0].ID)
		assert.Equal(t, "Deluxe King", rooms[0].Type)
		assert.Equal(t, 199.0, rooms[0].Price)
	})

	t.Run("body statusCode wins over the transport status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			// transport says 200, body says not found
			writeJSON(w, http.StatusOK, map[string]any{
				"statusCode": 404,
				"message":    "Room Not Found",
			})
		})

		_, _, err := client.RoomByID(ctx, 99)
		require.Error(t, err)
		assert.True(t, gateway.IsKind(err, gateway.KindNotFound))
		assert.Equal(t, "Room Not Found", gateway.MessageOf(err))
	})

	t.Run("missing body statusCode falls back to the transport status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"message": "Access denied",
			})
		})

		_, err := client.AllRooms(ctx, "some-token")
		assert.True(t, gateway.IsKind(err, gateway.KindForbidden))
	})

	t.Run("undecodable body is an availability failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>gateway timeout</html>"))
		})

		_, err := client.AvailableRooms(ctx)
		assert.True(t, gateway.IsKind(err, gateway.KindUnavailable))
	})
}

func TestAuthHeaders(t *testing.T) {
	ctx := context.Background()

	t.Run("token travels as a bearer header", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]any{"statusCode": 200})
		})

		_, err := client.AllRooms(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc123", gotAuth)
	})

	t.Run("anonymous calls send no auth header", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]any{"statusCode": 200})
		})

		_, err := client.AvailableRooms(ctx)
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "guest@example.com", creds["email"])

		writeJSON(w, http.StatusOK, map[string]any{
			"statusCode":     200,
			"token":          "jwt-token",
			"role":           "USER",
			"expirationTime": "7 days",
		})
	})

	result, err := client.Login(context.Background(), "guest@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, "USER", result.Role)
	assert.Equal(t, "7 days", result.ExpirationTime)
}

func TestCreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/book-room/7/42", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-06-01", req["checkInDate"])

		writeJSON(w, http.StatusOK, map[string]any{
			"statusCode":              200,
			"bookingConfirmationCode": "CONF-7781",
			"booking":                 map[string]any{"id": 11},
		})
	})

	result, err := client.CreateBooking(context.Background(), "tok", 7, 42, gateway.BookingRequest{
		CheckInDate:  "2024-06-01",
		CheckOutDate: "2024-06-03",
		NumOfAdults:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), result.BookingID)
	assert.Equal(t, "CONF-7781", result.ConfirmationCode)
}
