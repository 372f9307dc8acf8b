package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"king_backend/internal/models"
	"king_backend/internal/services"
)

type failingSales struct{ err error }

func (f failingSales) CreateSale(context.Context, services.CreateSaleRequest) (*models.Sale, error) {
	return nil, f.err
}

func (f failingSales) GetSaleByID(context.Context, int64) (*models.Sale, error) {
	return nil, f.err
}

type failingAssistant struct{ err error }

func (f failingAssistant) CheckStock(context.Context, string) (string, error) { return "", f.err }

func (f failingAssistant) LookupProduct(context.Context, string, string) (*services.AssistantReply, error) {
	return nil, f.err
}

func serve(h gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", h)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSaleReportsUnderlyingError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	h := NewSaleHandler(failingSales{err: cause})

	w := serve(h.CreateSale, `{"clienteId":1,"valorTotal":1,"itens":[]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var problem map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatal(err)
	}
	if problem["detail"] != "Erro ao registrar venda: connection reset by peer" {
		t.Errorf("detail = %v", problem["detail"])
	}
	if problem["title"] != "An error occurred while processing your request." {
		t.Errorf("title = %v", problem["title"])
	}
}

func TestAssistantStorageFailureIs500(t *testing.T) {
	h := NewAssistantHandler(failingAssistant{err: errors.New("db down")})

	w := serve(h.CheckStock, `{"request":{"intent":{"slots":{"nomeProduto":{"value":"Agua"}}}}}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("CheckStock status = %d", w.Code)
	}

	w = serve(h.LookupProduct, `{"request":{"intent":{"slots":{"informacao":{"value":"estoque 5"}}}}}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("LookupProduct status = %d", w.Code)
	}
}

func TestAssistantMalformedBodyIsNotUnderstood(t *testing.T) {
	h := NewAssistantHandler(failingAssistant{})

	w := serve(h.CheckStock, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.AssistantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Response.ShouldEndSession == nil || !*resp.Response.ShouldEndSession {
		t.Errorf("shouldEndSession = %v, want true", resp.Response.ShouldEndSession)
	}
	if resp.Response.OutputSpeech.Text != msgNameNotUnderstood {
		t.Errorf("text = %q", resp.Response.OutputSpeech.Text)
	}
}
