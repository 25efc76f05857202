package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/account-core/internal/domain/service"
	"github.com/oksasatya/account-core/pkg/response"
)

// CtxAccountIDKey is the gin context key holding the authenticated account id.
const CtxAccountIDKey = "accountID"

type accountIDKey struct{}

// AccountIDFromContext returns the account id attached by Auth.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey{}).(string)
	return id, ok && id != ""
}

// Auth verifies the bearer token and attaches the account id to both the gin
// context and the request context. Anything else aborts with 401.
func Auth(tokens service.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		accountID, err := tokens.Verify(token)
		if err != nil || accountID == "" {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}

		c.Set(CtxAccountIDKey, accountID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), accountIDKey{}, accountID))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
