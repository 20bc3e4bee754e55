package logger

import (
	"context"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	RequestIdKey contextKey = "request_id_ctx"
	RequestId    string     = "request_id"
)

// WithRequestId creates a copy of context with a request-id scoped logger
func WithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, RequestIdKey, Logger(ctx).WithFields(logrus.Fields{RequestId: requestId}))
}

// Logger returns a reference of logrus.Entry with the request_id field set
func Logger(ctx context.Context) *logrus.Entry {
	if ctxLogger, ok := ctx.Value(RequestIdKey).(*logrus.Entry); ok {
		return ctxLogger
	}

	return logrus.NewEntry(logrus.StandardLogger())
}

// AddValueToContextLogger adds a new key-value in the existing logger present in context
func AddValueToContextLogger(ctx context.Context, key string, value interface{}) context.Context {
	log := Logger(ctx)
	return context.WithValue(ctx, RequestIdKey, log.WithField(key, value))
}

// Init initializes logrus
func Init() {
	log := logrus.StandardLogger()
	log.Formatter = &logrus.JSONFormatter{}
	log.Out = os.Stdout
	log.SetLevel(getLevel())
}

// EnableDebug raises the standard logger to debug level, regardless of
// DEBUG_MODE
func EnableDebug() {
	logrus.StandardLogger().SetLevel(logrus.DebugLevel)
}

func getLevel() logrus.Level {
	debugMode, _ := strconv.ParseBool(os.Getenv("DEBUG_MODE"))
	if debugMode {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
