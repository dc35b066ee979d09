package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func testLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 5*time.Second, 1000, 1000, staticTokens(token), testLogger())
	return client, srv
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]string{"_id": "u1", "name": "Asha", "email": "asha@example.com"},
			"token": "jwt-abc",
		})
	}), "")

	user, token, err := client.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	t.Run("MissingInput", func(t *testing.T) {
		_, _, err := client.Login(ctx, "", "secret")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestClient_Slots(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/slots/gym1", r.URL.Path)
		assert.Equal(t, "2024-02-01", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[
			{"_id":"s1","date":"2024-02-01","startTime":"09:00","endTime":"10:00","price":350,"available":false},
			{"_id":"s2","date":"2024-02-01","startTime":"10:00","endTime":"11:00","price":350}
		]`))
	}), "")

	slots, err := client.Slots(ctx, "gym1", "2024-02-01")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].IsAvailable())
	assert.True(t, slots[1].IsAvailable())

	t.Run("RequiresGymAndDate", func(t *testing.T) {
		_, err := client.Slots(ctx, "", "2024-02-01")
		assert.ErrorIs(t, err, ErrValidation)

		_, err = client.Slots(ctx, "gym1", "")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("UpstreamMessageSurfaced", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"slot already booked"}`))
		}), "")

		_, err := client.GymByID(ctx, "gym1")
		require.ErrorIs(t, err, ErrUpstream)
		assert.Contains(t, err.Error(), "slot already booked")
	})

	t.Run("UpstreamWithoutBody", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}), "")

		_, err := client.GymByID(ctx, "gym1")
		require.ErrorIs(t, err, ErrUpstream)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("NetworkError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // dead endpoint
		client := NewClient(srv.URL, time.Second, 1000, 1000, staticTokens(""), testLogger())

		_, err := client.GymByID(ctx, "gym1")
		assert.ErrorIs(t, err, ErrNetwork)
	})

	t.Run("UnauthorizedStatus", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), "stale-token")

		_, err := client.MyBookings(ctx)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestClient_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresSession", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the backend without a token")
		}), "")

		_, err := client.CreatePaymentIntent(ctx, "slot1", 350)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("SendsBearerToken", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer jwt-abc", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"clientSecret":"cs_test","bookingId":"bk1"}`))
		}), "jwt-abc")

		resp, err := client.CreatePaymentIntent(ctx, "slot1", 350)
		require.NoError(t, err)
		assert.Equal(t, "cs_test", resp.ClientSecret)
		assert.Equal(t, "bk1", resp.BookingID)
	})
}

func TestClient_CancelBooking(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookings/bk1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}), "jwt-abc")

	require.NoError(t, client.CancelBooking(ctx, "bk1"))
	assert.ErrorIs(t, client.CancelBooking(ctx, ""), ErrValidation)
}
