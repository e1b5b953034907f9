package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func withTokenInfoServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	old := tokenInfoURL
	tokenInfoURL = srv.URL
	t.Cleanup(func() { tokenInfoURL = old })
}

func TestVerifyGoogleIDToken_Valid(t *testing.T) {
	exp := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	withTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "tok123" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"sub":"g-sub-1","email":"fer@example.com","name":"Fer","aud":"client-1","exp":"` + exp + `"}`))
	})

	claims, err := VerifyGoogleIDToken(context.Background(), "tok123", "client-1")
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.Sub != "g-sub-1" || claims.Email != "fer@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyGoogleIDToken_AudienceMismatch(t *testing.T) {
	exp := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	withTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"g-sub-1","aud":"someone-else","exp":"` + exp + `"}`))
	})

	if _, err := VerifyGoogleIDToken(context.Background(), "tok", "client-1"); err == nil {
		t.Fatal("expected audience mismatch to fail")
	}
}

func TestVerifyGoogleIDToken_Expired(t *testing.T) {
	exp := strconv.FormatInt(time.Now().Add(-time.Minute).Unix(), 10)
	withTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"g-sub-1","aud":"client-1","exp":"` + exp + `"}`))
	})

	if _, err := VerifyGoogleIDToken(context.Background(), "tok", "client-1"); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestVerifyGoogleIDToken_Rejected(t *testing.T) {
	withTokenInfoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	if _, err := VerifyGoogleIDToken(context.Background(), "garbage", "client-1"); err == nil {
		t.Fatal("expected rejected token to fail")
	}
}

func TestVerifyGoogleIDToken_Empty(t *testing.T) {
	if _, err := VerifyGoogleIDToken(context.Background(), "", "client-1"); err == nil {
		t.Fatal("expected empty token to fail")
	}
}
