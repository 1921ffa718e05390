package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Time logs the duration and outcome of an operation. Use with defer:
//
//	defer obs.Time(ctx, "geo.Resolve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		logger := log.Ctx(ctx)
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().
				Str("op", name).
				Int64("dur_ms", dur.Milliseconds()).
				Err(*errp).
				Msg("operation failed")
			return
		}

		logger.Debug().
			Str("op", name).
			Int64("dur_ms", dur.Milliseconds()).
			Msg("operation done")
	}
}
