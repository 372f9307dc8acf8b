package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"king_backend/pkg/utils"
)

func newProtected(secret []byte, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{AuthMiddleware(secret)}
	if len(roles) > 0 {
		chain = append(chain, RoleAuthMiddleware(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextSubject))
	})
	r.GET("/private", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("s3cret")
	valid, err := utils.GenerateAccessToken(secret, "user-7", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := utils.GenerateAccessToken(secret, "user-7", "admin", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	foreign, err := utils.GenerateAccessToken([]byte("other"), "user-7", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
	}

	engine := newProtected(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
			if tt.want == http.StatusOK && w.Body.String() != "user-7" {
				t.Errorf("subject = %q, want user-7", w.Body.String())
			}
		})
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	secret := []byte("s3cret")
	engine := newProtected(secret, "admin", "operador")

	for role, want := range map[string]int{
		"admin":    http.StatusOK,
		"OPERADOR": http.StatusOK,
		"leitura":  http.StatusForbidden,
		"":         http.StatusForbidden,
	} {
		token, err := utils.GenerateAccessToken(secret, "u", role, time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("role %q: status = %d, want %d", role, w.Code, want)
		}
	}
}
