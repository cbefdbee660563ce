package middleware

import (
	"context"
	"strings"

	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/router"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type AuthVerifier struct {
	useAccessToken bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (v *AuthVerifier) WithAccessToken() *AuthVerifier {
	v.useAccessToken = true
	return v
}

// Middleware resolves the requesting user from the Authorization header or
// the access token cookie and stores the user id into the context.
func (v *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if !v.useAccessToken {
			return nil, nil
		}

		token := extractToken(ctx)
		if token == "" {
			if userID := sessionUserID(ctx); userID != "" {
				return xcontext.WithRequestUserID(ctx, userID), nil
			}

			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func extractToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimPrefix(authorization, "Bearer ")
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// sessionUserID is the fallback for browser clients holding only the login
// session cookie.
func sessionUserID(ctx context.Context) string {
	session, err := xcontext.SessionStore(ctx).Get(
		xcontext.HTTPRequest(ctx), xcontext.Configs(ctx).Session.Name)
	if err != nil {
		return ""
	}

	userID, ok := session.Values["user_id"].(string)
	if !ok {
		return ""
	}

	return userID
}
