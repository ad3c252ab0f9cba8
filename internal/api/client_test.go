package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

type fakeTokens struct {
	token string
	err   error
}

func (f fakeTokens) Token() (string, error) {
	return f.token, f.err
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Booking{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, fakeTokens{token: "tok-123"}, Options{})
	if _, err := c.ListBookings(context.Background()); err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header=%q", gotAuth)
	}
}

func TestClientMissingSession(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", fakeTokens{err: errors.New("no session")}, Options{})
	_, err := c.ListBookings(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "duplicate_booking", "message": "booking already exists"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, fakeTokens{token: "tok"}, Options{})
	_, err := c.CreateBooking(context.Background(), CreateBookingInput{
		RequestID:    "11111111-1111-1111-1111-111111111111",
		PropertyID:   "p1",
		ServiceTypes: []models.ServiceType{{ID: "1"}},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != "duplicate_booking" {
		t.Fatalf("error code lost: %v", err)
	}
}

func TestClientValidatesBeforeRequest(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", fakeTokens{token: "tok"}, Options{})

	if _, err := c.CreateBooking(context.Background(), CreateBookingInput{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("empty booking accepted: %v", err)
	}
	if _, err := c.Login(context.Background(), LoginInput{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("empty login accepted: %v", err)
	}
	if _, err := c.Reply(context.Background(), ReplyInput{ChatID: "c1"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("empty reply accepted: %v", err)
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, fakeTokens{token: "tok"}, Options{Timeout: 20 * time.Millisecond})
	if _, err := c.ListBookings(context.Background()); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestClientContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	c := NewClient(srv.URL, fakeTokens{token: "tok"}, Options{})
	if _, err := c.ListBookings(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoginFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(LoginResult{UserID: "u1", OTPRequired: true})
		case "/auth/verify-login":
			var in VerifyLoginInput
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Code != "123456" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"code": "invalid_otp", "message": "wrong code"},
				})
				return
			}
			_ = json.NewEncoder(w).Encode(VerifyLoginResult{
				Token: "tok-xyz",
				User:  models.User{UserID: "u1", Role: models.RolePropertyManager},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, fakeTokens{}, Options{})
	login, err := c.Login(context.Background(), LoginInput{Email: "pm@example.com", Password: "hunter2"})
	if err != nil || !login.OTPRequired {
		t.Fatalf("login: %+v, %v", login, err)
	}

	if _, err := c.VerifyLogin(context.Background(), VerifyLoginInput{UserID: "u1", Code: "000000"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong otp: %v", err)
	}

	verified, err := c.VerifyLogin(context.Background(), VerifyLoginInput{UserID: "u1", Code: "123456"})
	if err != nil || verified.Token != "tok-xyz" {
		t.Fatalf("verify: %+v, %v", verified, err)
	}
}

func TestRetriable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"server error", &Error{Status: http.StatusInternalServerError}, true},
		{"bad gateway", &Error{Status: http.StatusBadGateway}, true},
		{"conflict", &Error{Status: http.StatusConflict}, false},
		{"bad request", &Error{Status: http.StatusBadRequest}, false},
		{"unauthorized", &Error{Status: http.StatusUnauthorized}, false},
		{"transport", errors.New("connection refused"), true},
		{"nil", nil, false},
	}
	for _, tt := range cases {
		if got := Retriable(tt.err); got != tt.want {
			t.Fatalf("%s: Retriable=%v, want %v", tt.name, got, tt.want)
		}
	}
}
