package security

import (
	"net/http"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const notifyTokenHeader = "X-Notify-Token"

// RequireNotifyToken guards the notification endpoints with a shared
// token checked against a bcrypt hash. An empty hash disables the check,
// which keeps local setups and tests friction free.
func RequireNotifyToken(tokenHash string) func(http.Handler) http.Handler {
	if tokenHash == "" {
		logger.Warn("[security] NOTIFY_TOKEN_HASH is empty, notification endpoints are unauthenticated")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(notifyTokenHeader)
			if token == "" {
				logger.WithField("remote", r.RemoteAddr).Warn("[security] missing notify token")
				http.Error(w, "missing notify token", http.StatusUnauthorized)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
				logger.WithField("remote", r.RemoteAddr).Warn("[security] invalid notify token")
				http.Error(w, "invalid notify token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HashToken produces the bcrypt hash to store in NOTIFY_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
