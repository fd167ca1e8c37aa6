package practicum

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// instrument logs every request outcome at debug level.
func instrument(client *resty.Client, log zerolog.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		log.Debug().
			Ctx(res.Request.Context()).
			Str("method", res.Request.Method).
			Str("url", res.Request.URL).
			Int("status", res.StatusCode()).
			Dur("duration", res.Time()).
			Int64("size", res.Size()).
			Msg("status api response")
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.Debug().
			Ctx(req.Context()).
			Str("method", req.Method).
			Str("url", req.URL).
			Err(err).
			Msg("status api request error")
	})
}

// restyLogger routes resty's internal messages to zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msg(fmt.Sprintf(format, v...))
}
