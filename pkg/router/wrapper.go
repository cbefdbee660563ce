package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := router.befores
	afters := router.afters
	closers := router.closers

	return func(w http.ResponseWriter, httpReq *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.baseCtx, httpReq)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithErrorHolder(ctx)
		ctx = xcontext.WithResponseHolder(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		if httpReq.Method != method {
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Unsupported method"))
			handleResponse(ctx)
			return
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = bindQuery(httpReq.URL.Query(), &req)
		case http.MethodPost:
			err = json.NewDecoder(httpReq.Body).Decode(&req)
			if errors.Is(err, io.EOF) {
				err = nil
			}
		}
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			handleResponse(ctx)
			return
		}

		for _, m := range befores {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				handleResponse(ctx)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
		} else {
			xcontext.SetResponse(ctx, resp)
		}

		for _, m := range afters {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				break
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		handleResponse(ctx)
	}
}
