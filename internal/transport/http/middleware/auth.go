package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"sipeka/internal/requestctx"
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Auth extracts the provider session token from the Authorization
// header and stores the derived token identifier (issuer|subject) in
// the request context. Requests without a valid token pass through
// unauthenticated; authorization happens per operation.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := parseSessionToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestctx.WithTokenIdentifier(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseSessionToken(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Issuer == "" || claims.Subject == "" {
		return "", errors.New("token missing issuer or subject")
	}
	return claims.Issuer + "|" + claims.Subject, nil
}

func GetTokenIdentifier(ctx context.Context) string {
	return requestctx.GetTokenIdentifier(ctx)
}
