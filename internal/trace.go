package internal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLogger returns a middleware that tags every exchange with a fresh
// request id and reports its outcome through logger. The library logs
// nothing unless this is installed with [Client.Use].
func RequestLogger(logger zerolog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *Request) (*Response, error) {
			id := uuid.NewString()
			start := time.Now()
			resp, err := next(ctx, req)
			if err != nil {
				logger.Error().
					Str("id", id).
					Str("method", req.Method).
					Str("target", req.Target()).
					Dur("elapsed", time.Since(start)).
					Err(err).
					Msg("request failed")
				return nil, err
			}
			logger.Info().
				Str("id", id).
				Str("method", req.Method).
				Str("target", req.Target()).
				Int("status", resp.StatusCode).
				Dur("elapsed", time.Since(start)).
				Msg("request done")
			return resp, nil
		}
	}
}
