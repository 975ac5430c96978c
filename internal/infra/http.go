package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/jobdesk/messaging-service/internal/api"
	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/model"
)

type SessionValidator interface {
	ValidateSessionToken(tokenString string) (*model.ActorSessionClaims, error)
}

// AuthHTTP resolves the calling actor from the bearer token and puts it into
// the request context under config.KeyActor.
func AuthHTTP(next http.Handler, validator SessionValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		claims, err := validator.ValidateSessionToken(tokenString)
		if err != nil {
			writeUnauthorized(w, "invalid session token")
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			writeUnauthorized(w, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyActor, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
