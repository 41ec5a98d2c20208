package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ecoentorno/internal/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

// Principal — владелец токена текущего запроса.
type Principal struct {
	EmployeeID int64
	Role       models.Role
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// JWTMiddleware: Authorization: Bearer <token>.
func JWTMiddleware(issuer *Issuer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				models.WriteProblem(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			claims, err := issuer.Verify(token)
			if err != nil {
				msg := ErrTokenInvalid.Error()
				if errors.Is(err, ErrTokenExpired) {
					msg = ErrTokenExpired.Error()
				}
				models.WriteProblem(w, http.StatusUnauthorized, msg, nil)
				return
			}
			id, _ := claims.EmployeeID()
			ctx := WithPrincipal(r.Context(), &Principal{EmployeeID: id, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken: имя схемы без учёта регистра (RFC 7235), логин отдаёт "bearer".
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireRole пропускает только перечисленные роли.
func RequireRole(roles ...models.Role) mux.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				models.WriteProblem(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			if _, ok := allowed[p.Role]; !ok {
				models.WriteProblem(w, http.StatusForbidden, "forbidden for role "+string(p.Role), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
