package middleware

import (
	"context"
	"errors"

	"github.com/hieuduy1751/paio/pkg/router"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type SessionResponse interface {
	SessionInfo() map[string]any
}

func HandleSaveSession() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		sessionResp, ok := xcontext.Response(ctx).(SessionResponse)
		if !ok {
			return nil, nil
		}

		sessionInfo := sessionResp.SessionInfo()
		if sessionInfo == nil {
			return nil, errors.New("no session info")
		}

		session, err := xcontext.SessionStore(ctx).Get(
			xcontext.HTTPRequest(ctx), xcontext.Configs(ctx).Session.Name)
		if err != nil {
			return nil, err
		}

		for k, v := range sessionInfo {
			session.Values[k] = v
		}

		if err := session.Save(xcontext.HTTPRequest(ctx), xcontext.HTTPWriter(ctx)); err != nil {
			return nil, err
		}

		return nil, nil
	}
}
