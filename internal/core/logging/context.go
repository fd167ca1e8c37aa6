package logging

import "context"

type contextKey string

const (
	cycleKey    contextKey = "cycle"
	homeworkKey contextKey = "homework"
)

// WithCycle adds the poll iteration number to the context.
func WithCycle(ctx context.Context, cycle uint64) context.Context {
	return context.WithValue(ctx, cycleKey, cycle)
}

// WithHomework adds the homework name being processed to the context.
func WithHomework(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, homeworkKey, name)
}

// GetCycle retrieves the poll iteration number from the context.
// Returns false if not present.
func GetCycle(ctx context.Context) (uint64, bool) {
	c, ok := ctx.Value(cycleKey).(uint64)
	return c, ok
}

// GetHomework retrieves the homework name from the context.
// Returns empty string if not present.
func GetHomework(ctx context.Context) string {
	if name, ok := ctx.Value(homeworkKey).(string); ok {
		return name
	}
	return ""
}
