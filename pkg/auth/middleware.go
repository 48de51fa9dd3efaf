package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
)

type ContextKey string

const PrincipalKey ContextKey = "principal"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		principal := Principal{
			UserID:         claims.UserID,
			IsOwner:        claims.IsOwner,
			IsProfessional: claims.IsProfessional,
			IsSecretary:    claims.IsSecretary,
		}
		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext extracts the principal stored by AuthMiddleware.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}
