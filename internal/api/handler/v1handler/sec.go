package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"guardian/internal/config"
	"guardian/pkg/domain"
	"guardian/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

// ownerIDKey is the context key under which the authenticated owner is stored.
const ownerIDKey ctxKey = "OwnerID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PrivateKey is the PEM encoded RSA key tokens are signed with. Only its
	// public half is used for verification.
	PrivateKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PrivateKey: cfg.JWT.PrivateKey,
	}
}

// SecHandler verifies RS256 bearer tokens and resolves the owner ID from the
// subject claim.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// Middleware rejects requests without a valid bearer token and stores the
// authenticated owner ID in the request context.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := s.authenticate(r)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerIDKey, ownerID)))
	})
}

func (s *SecHandler) authenticate(r *http.Request) (domain.OwnerID, error) {
	header := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return domain.OwnerID{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return domain.OwnerID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.OwnerID{}, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return domain.OwnerID(subject), nil
}

// GetOwnerIDFromContext returns the owner ID stored by Middleware, or the
// zero ID when the request was not authenticated.
func GetOwnerIDFromContext(ctx context.Context) domain.OwnerID {
	ownerID, _ := ctx.Value(ownerIDKey).(domain.OwnerID)

	return ownerID
}

// NewSecHandler parses the configured key and returns a verifier for bearer tokens.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &SecHandler{publicKey: &key.PublicKey}, nil
}
