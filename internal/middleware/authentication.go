package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/internal/auth"
	contextkeys "github.com/MaximZagorsk/polls-drf-api/internal/contextKeys"
	models "github.com/MaximZagorsk/polls-drf-api/pkg/db"
)

// Credential scheme for anonymous identities, e.g. "Authorization: Anonim <token>".
const anonymousScheme = "Anonim"

type AuthenticationMiddleware struct {
	DB   *gorm.DB
	Auth *auth.Manager
}

func bearerToken(r *http.Request, scheme string) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AdminRequired rejects requests that do not carry a valid admin session
// token ("Authorization: Bearer <jwt>").
func (mw AuthenticationMiddleware) AdminRequired(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r, "Bearer")
		if !ok {
			gecho.Unauthorized(w).WithMessage("Admin session token is required").Send()
			return
		}

		claims, err := mw.Auth.Parse(token)
		if err != nil || !claims.IsAdmin {
			gecho.Unauthorized(w).WithMessage("Invalid or expired session").Send()
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, contextkeys.IsAdminKey, true)
		ctx = context.WithValue(ctx, contextkeys.AdminClaimsKey, claims)

		next(w, r.WithContext(ctx))
	}
}

// CredentialRequired rejects requests that do not carry a valid anonymous
// credential ("Authorization: Anonim <token>") and puts the resolved
// identity on the context.
func (mw AuthenticationMiddleware) CredentialRequired(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r, anonymousScheme)
		if !ok {
			gecho.Unauthorized(w).WithMessage("'Anonim' credential is required").Send()
			return
		}

		ctx := r.Context()

		user, err := gorm.G[models.User](mw.DB).Where("token = ?", token).First(ctx)
		if err == gorm.ErrRecordNotFound {
			gecho.Unauthorized(w).WithMessage("Wrong Token").Send()
			return
		} else if err != nil {
			gecho.InternalServerError(w).Send()
			return
		}

		ctx = context.WithValue(ctx, contextkeys.AuthUserKey, user)

		next(w, r.WithContext(ctx))
	}
}

// Identify resolves credentials on endpoints open to every capability level.
// It never rejects; handlers branch on what ended up in the context.
func (mw AuthenticationMiddleware) Identify(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, ok := bearerToken(r, "Bearer"); ok {
			if claims, err := mw.Auth.Parse(token); err == nil && claims.IsAdmin {
				ctx = context.WithValue(ctx, contextkeys.IsAdminKey, true)
				ctx = context.WithValue(ctx, contextkeys.AdminClaimsKey, claims)
			}
		} else if token, ok := bearerToken(r, anonymousScheme); ok {
			if user, err := gorm.G[models.User](mw.DB).Where("token = ?", token).First(ctx); err == nil {
				ctx = context.WithValue(ctx, contextkeys.AuthUserKey, user)
			}
		}

		next(w, r.WithContext(ctx))
	}
}

// AuthUser returns the anonymous identity resolved from the request
// credential, if any.
func AuthUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(contextkeys.AuthUserKey).(models.User)
	if !ok {
		return nil, false
	}
	return &user, true
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(r *http.Request) bool {
	isAdmin, ok := r.Context().Value(contextkeys.IsAdminKey).(bool)
	return ok && isAdmin
}
