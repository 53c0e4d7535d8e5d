package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"mfroosh-trade-backend/config"
	v1 "mfroosh-trade-backend/internal/delivery/http/v1"
	"mfroosh-trade-backend/internal/domain"
	"mfroosh-trade-backend/internal/usecase"
	"mfroosh-trade-backend/pkg/email"
	"mfroosh-trade-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{"name":"Yousef","email":"yousef@example.com","phone":"0555","product":"dates","message":"Hello\nthere"}`

type countingSender struct {
	calls int32
	err   error
}

func (s *countingSender) Send(context.Context, email.Message) error {
	atomic.AddInt32(&s.calls, 1)
	return s.err
}

type panicUsecase struct{}

func (panicUsecase) Submit(context.Context, *domain.EnquiryRequest) (*domain.EnquiryReceipt, error) {
	panic("unexpected nil map")
}

type failingUsecase struct{}

func (failingUsecase) Submit(context.Context, *domain.EnquiryRequest) (*domain.EnquiryReceipt, error) {
	return nil, errors.New("disk full")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(uc domain.EnquiryUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{AllowedOrigins: []string{"*"}, PingMessage: "pong"}
	return v1.NewRouter(v1.RouterDeps{EnquiryUC: uc, Config: cfg, Logger: discardLogger()})
}

func newChainRouter(providers ...email.Provider) *gin.Engine {
	chain := email.NewChain(discardLogger(), 0, providers...)
	addr := email.Addressing{From: config.DefaultSenderEmail, To: config.DefaultRecipientEmail}
	return newRouter(usecase.NewEnquiryUsecase(validation.New(), chain, addr, discardLogger()))
}

func enabled(name string, s email.Sender) email.Provider {
	return email.Provider{Name: name, Enabled: func() bool { return true }, Sender: s}
}

func postEnquiry(r http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/api/send-enquiry", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSendEnquiryValidation(t *testing.T) {
	sender := &countingSender{}
	r := newChainRouter(enabled("resend", sender))

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"email":"a@b.co","phone":"1","product":"p","message":"m"}`, domain.MsgMissingFields},
		{"missing email", `{"name":"n","phone":"1","product":"p","message":"m"}`, domain.MsgMissingFields},
		{"missing phone", `{"name":"n","email":"a@b.co","product":"p","message":"m"}`, domain.MsgMissingFields},
		{"missing product", `{"name":"n","email":"a@b.co","phone":"1","message":"m"}`, domain.MsgMissingFields},
		{"empty message", `{"name":"n","email":"a@b.co","phone":"1","product":"p","message":""}`, domain.MsgMissingFields},
		{"empty object", `{}`, domain.MsgMissingFields},
		{"null body", `null`, domain.MsgMissingFields},
		{"empty body", ``, domain.MsgMissingFields},
		{"array body", `[]`, domain.MsgMissingFields},
		{"string body", `"x"`, domain.MsgMissingFields},
		{"number body", `42`, domain.MsgMissingFields},
		{"email without at", `{"name":"n","email":"ab.co","phone":"1","product":"p","message":"m"}`, domain.MsgInvalidEmail},
		{"email without dot after at", `{"name":"n","email":"a@bco","phone":"1","product":"p","message":"m"}`, domain.MsgInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := postEnquiry(r, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]any{"success": false, "message": tc.message}, resp)
		})
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(&sender.calls), "no delivery for rejected enquiries")
}

func TestSendEnquiryAccepted(t *testing.T) {
	want := map[string]any{"success": true, "message": domain.MsgEnquiryAccepted}

	t.Run("Should succeed with no provider configured", func(t *testing.T) {
		w, resp := postEnquiry(newChainRouter(), validBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, resp)
	})

	t.Run("Should succeed when the provider fails", func(t *testing.T) {
		sender := &countingSender{err: errors.New("503 from provider")}
		w, resp := postEnquiry(newChainRouter(enabled("resend", sender)), validBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, resp)
		assert.Equal(t, int32(1), atomic.LoadInt32(&sender.calls))
	})

	t.Run("Should succeed when the provider panics", func(t *testing.T) {
		sender := email.SenderFunc(func(context.Context, email.Message) error { panic("sdk bug") })
		w, resp := postEnquiry(newChainRouter(enabled("resend", sender)), validBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, resp)
	})

	t.Run("Should accept duplicates independently", func(t *testing.T) {
		sender := &countingSender{}
		r := newChainRouter(enabled("webhook", sender))
		for i := 0; i < 2; i++ {
			w, resp := postEnquiry(r, validBody)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, want, resp)
		}
		assert.Equal(t, int32(2), atomic.LoadInt32(&sender.calls))
	})

	t.Run("Should only invoke the primary when both are configured", func(t *testing.T) {
		primary, fallback := &countingSender{}, &countingSender{}
		r := newChainRouter(enabled("resend", primary), enabled("webhook", fallback))

		w, _ := postEnquiry(r, validBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int32(1), atomic.LoadInt32(&primary.calls))
		assert.Equal(t, int32(0), atomic.LoadInt32(&fallback.calls))
	})

	t.Run("Should relay through the HTTP gateway", func(t *testing.T) {
		var payload email.WebhookPayload
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer gw-key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		}))
		defer gateway.Close()

		providers := email.DefaultProviders(email.Settings{
			WebhookURL:   gateway.URL,
			WebhookToken: "gw-key",
			HTTPClient:   gateway.Client(),
		})
		w, _ := postEnquiry(newChainRouter(providers...), validBody)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, config.DefaultRecipientEmail, payload.To)
		assert.Equal(t, "New Enquiry from Yousef - dates", payload.Subject)
		assert.Contains(t, payload.HTML, "Hello<br>there")
	})
}

func TestSendEnquiryUnexpectedFailures(t *testing.T) {
	want := map[string]any{"success": false, "message": domain.MsgProcessingFailed}

	t.Run("Should report malformed JSON as a server failure", func(t *testing.T) {
		w, resp := postEnquiry(newChainRouter(), `{"name":`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, want, resp)
	})

	t.Run("Should report a wrongly typed field as a server failure", func(t *testing.T) {
		w, resp := postEnquiry(newChainRouter(), `{"name":1,"email":"a@b.co","phone":"1","product":"p","message":"m"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, want, resp)
	})

	t.Run("Should report unexpected usecase errors generically", func(t *testing.T) {
		w, resp := postEnquiry(newRouter(failingUsecase{}), validBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, want, resp)
	})

	t.Run("Should recover from panics", func(t *testing.T) {
		w, resp := postEnquiry(newRouter(panicUsecase{}), validBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, want, resp)
	})
}

func TestRouterAmbientRoutes(t *testing.T) {
	r := newChainRouter()

	t.Run("Should answer ping with the configured message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("Should report health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.JSONEq(t, `{"success":true,"message":"System operational"}`, w.Body.String())
	})

	t.Run("Should expose the request id only as a header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/send-enquiry", strings.NewReader(validBody))
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
		assert.NotContains(t, w.Body.String(), "req-42")
	})

	t.Run("Should answer CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/send-enquiry", nil)
		req.Header.Set("Origin", "https://www.mfrooshtrade.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
