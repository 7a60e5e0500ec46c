// Package logging builds the zap loggers used by the resolver Lambdas.
package logging

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger at the given level. Development loggers write
// human-readable console output; production loggers write JSON.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// ForInvocation returns a child of logger annotated with the Lambda request id
// found in ctx, if any, and the GraphQL field being resolved.
func ForInvocation(ctx context.Context, logger *zap.Logger, fieldName string) *zap.Logger {
	fields := make([]zap.Field, 0, 2)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields = append(fields, zap.String("request_id", lc.AwsRequestID))
	}
	if fieldName != "" {
		fields = append(fields, zap.String("field", fieldName))
	}
	return logger.With(fields...)
}
