package logging

import "context"

type contextKey struct{}

var logDataKey = contextKey{}

// WithLogData attaches a LogData to the context so handlers deeper in the
// request chain can record timings and data items.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey, logData)
}

// GetLogData returns the LogData attached to the context, or nil.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey).(*LogData)
	return logData
}
