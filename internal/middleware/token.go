package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/hieuduy1751/paio/pkg/router"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type AccessTokenResponse interface {
	AccessTokenInfo() string
}

// HandleSetAccessToken mirrors any access token in the response as a cookie,
// so browser clients do not need to manage the Authorization header.
func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		tokenResp, ok := xcontext.Response(ctx).(AccessTokenResponse)
		if ok {
			cfg := xcontext.Configs(ctx).Auth.AccessToken
			http.SetCookie(xcontext.HTTPWriter(ctx), &http.Cookie{
				Name:     cfg.Name,
				Value:    tokenResp.AccessTokenInfo(),
				Domain:   "",
				Path:     "/",
				Expires:  time.Now().Add(cfg.Expiration.Duration),
				Secure:   true,
				HttpOnly: false,
			})
		}

		return nil, nil
	}
}
