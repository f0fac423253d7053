package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardian/internal/api"
	"guardian/internal/api/handler/v1handler"
	mockmonitor "guardian/internal/monitor/mock"
	"guardian/pkg/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestNewServer exercises the full middleware stack once: public routes,
// bearer authentication, the metrics endpoint and error rendering.
func TestNewServer(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	ctrl := gomock.NewController(t)
	m := mockmonitor.NewMockMonitor(ctrl)

	server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Monitor: m}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PrivateKey: string(keyPEM)},
		Addr:              ":0",
		RequestTimeout:    time.Minute,
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	owner := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   owner.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	t.Run("questionnaire is public", func(t *testing.T) {
		m.EXPECT().Questionnaire().Return(domain.Questionnaire{Version: "v1"})

		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/questionnaire", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reports require a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("authenticated listing", func(t *testing.T) {
		m.EXPECT().History(gomock.Any(), domain.OwnerID(owner), domain.ReportKind(""), uint(0), uint(0)).
			Return(nil, uint(0), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/reports", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
