package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the calling user
	UserKey contextKey = "user"
)

// WithUser adds the calling user to ctx.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser retrieves the calling user from context.
func GetUser(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(UserKey).(domain.User)
	return user, ok
}

// Identity reads the caller from the X-User-* headers. Requests without a
// user id are rejected. A missing role means player.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			log.Warn(LogMsgIdentityRejected, "path", r.URL.Path, "reason", "missing user")
			http.Error(w, ErrMsgMissingUser, http.StatusUnauthorized)
			return
		}

		role := domain.Role(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole))))
		switch role {
		case "":
			role = domain.RolePlayer
		case domain.RolePlayer, domain.RoleGM:
		default:
			log.Warn(LogMsgIdentityRejected, "path", r.URL.Path, "reason", "invalid role", "role", role)
			http.Error(w, ErrMsgInvalidRole, http.StatusBadRequest)
			return
		}

		user := domain.User{
			ID:          userID,
			Name:        r.Header.Get(HeaderUserName),
			Role:        role,
			CharacterID: r.Header.Get(HeaderCharacterID),
		}
		ctx := WithUser(r.Context(), user)
		if sid := r.Header.Get(HeaderSessionID); sid != "" {
			ctx = logger.WithSessionID(ctx, sid)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Confirmation attaches a confirmer answering every prompt of the request
// with the confirm query parameter or X-Confirm header. Without either the
// prompts are declined.
func Confirmation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		answer := r.URL.Query().Get(QueryParamConfirm)
		if answer == "" {
			answer = r.Header.Get(HeaderConfirm)
		}
		var c catalog.Confirmer = catalog.Deny
		if ok, err := strconv.ParseBool(answer); err == nil && ok {
			c = catalog.Accept
		}
		next.ServeHTTP(w, r.WithContext(catalog.WithConfirmer(r.Context(), c)))
	})
}
