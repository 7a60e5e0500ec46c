// Package bootstrap wires the dependencies shared by every resolver Lambda at cold start.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"appsync-books/internal/config"
	"appsync-books/internal/logging"
	"appsync-books/internal/store"
	"appsync-books/internal/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"
)

// Env holds the configured dependencies of a resolver Lambda.
type Env struct {
	Config config.Config
	Logger *zap.Logger
	Store  *store.DynamoDB
}

// Load reads the configuration and builds the logger and DynamoDB store.
// A missing table name is logged by the handlers, not treated as an error here.
func Load(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("could not load AWS config: %w", err)
	}
	if cfg.TracingEnabled {
		tracing.Instrument(&awsCfg)
	}

	if err := cfg.ResolveTable(ctx, ssm.NewFromConfig(awsCfg)); err != nil {
		logger.Error("could not resolve books table name", zap.Error(err))
	}

	ddbClient := newDynamoDBClient(awsCfg, cfg.MaxBackoff)

	logger.Debug("resolver initialized",
		zap.String("table", cfg.BooksTable),
		zap.Bool("tracing", cfg.TracingEnabled),
		zap.Duration("get_book_delay", cfg.GetBookDelay),
	)

	return &Env{
		Config: cfg,
		Logger: logger,
		Store:  store.NewDynamoDB(ddbClient, store.NewScanPaginator),
	}, nil
}

func newDynamoDBClient(cfg aws.Config, maxBackoff time.Duration) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.Retryer = retry.AddWithMaxBackoffDelay(retry.NewStandard(), maxBackoff)
	})
}
