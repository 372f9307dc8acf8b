package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseID(%q) = %d, %v", tt.in, got, err)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("k")
	token, err := GenerateAccessToken(secret, "ana", "admin", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "ana" || claims.Role != "admin" || claims.Issuer != TokenIssuer {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := GenerateAccessToken(nil, "ana", "admin", time.Minute); err == nil {
		t.Error("expected an error for an empty secret")
	}
}

func TestRespondProblem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondProblem(c, http.StatusInternalServerError, "boom")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}
	var p Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Status != 500 || p.Detail != "boom" || p.Title != "An error occurred while processing your request." {
		t.Errorf("problem = %+v", p)
	}
}

func TestGinLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinLogger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if id := w.Header().Get(RequestIDHeader); id == "" || id != w.Body.String() {
		t.Errorf("generated id %q, body %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "abc" {
		t.Errorf("incoming id not propagated: %q", w.Header().Get(RequestIDHeader))
	}
}
