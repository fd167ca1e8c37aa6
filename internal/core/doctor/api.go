package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/hay-kot/hwbot/internal/core/homework"
)

// Fetcher performs one status API request.
type Fetcher interface {
	Fetch(ctx context.Context, from time.Time) (any, error)
}

// APICheck performs a live request against the status API and validates
// the response shape.
type APICheck struct {
	fetcher Fetcher
	since   time.Duration
}

// NewAPICheck creates an API check querying statuses from since ago.
func NewAPICheck(fetcher Fetcher, since time.Duration) *APICheck {
	return &APICheck{fetcher: fetcher, since: since}
}

func (c *APICheck) Name() string {
	return "Status API"
}

func (c *APICheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	payload, err := c.fetcher.Fetch(ctx, time.Now().Add(-c.since))
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "request",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}
	result.Items = append(result.Items, CheckItem{Label: "request", Status: StatusPass})

	items, err := homework.ExtractHomeworks(payload)
	switch {
	case err != nil && len(items) == 0:
		result.Items = append(result.Items, CheckItem{
			Label:  "response",
			Status: StatusFail,
			Detail: err.Error(),
		})
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "response",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%d homeworks, some malformed: %v", len(items), err),
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "response",
			Status: StatusPass,
			Detail: fmt.Sprintf("%d homeworks", len(items)),
		})
	}

	return result
}
