package router

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/xcontext"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func handleResponse(ctx context.Context) {
	err := func() error {
		if err := xcontext.Error(ctx); err != nil {
			return err
		}

		if resp := xcontext.Response(ctx); resp != nil {
			if err := WriteJson(ctx, newResponse(resp)); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
				return errorx.New(errorx.BadResponse, "Cannot write the response")
			}
		}

		return nil
	}()

	if err != nil {
		if werr := WriteJson(ctx, newErrorResponse(err)); werr != nil {
			xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
		}
	}
}

func WriteJson(ctx context.Context, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	w := xcontext.HTTPWriter(ctx)
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
