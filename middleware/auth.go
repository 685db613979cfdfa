package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/sirupsen/logrus"
)

// SessionVerifier превращает токен из запроса в сессию игрока.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*models.Session, error)
}

// Authenticate requires a valid bearer token. The token may also come in the
// "token" query parameter, browsers cannot set headers on WebSocket upgrades.
func Authenticate(verifier SessionVerifier, logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := tokenFromRequest(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			session, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.WithError(err).Debug("token rejected")
				writeError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), *session)))
		})
	}
}

// Authorize пропускает только игроков с одной из ролей. Ставится после Authenticate.
func Authorize(roles ...models.PlayerRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "operation not allowed for the current player")
		})
	}
}

func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", errors.New("authorization header must be 'Bearer <token>'")
		}
		return strings.TrimSpace(token), nil
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}
	return "", errors.New("authentication required")
}
