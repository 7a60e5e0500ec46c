// Package config loads the settings shared by the book resolver Lambdas.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TableEnvVar names the environment variable holding the books table name.
const TableEnvVar = "BOOKS_TABLE"

// Config holds the process-wide settings of a resolver Lambda.
type Config struct {
	// BooksTable may be empty; handlers refuse to touch the store when it is.
	BooksTable string `env:"BOOKS_TABLE"`
	// BooksTableParam names an SSM parameter holding the table name, consulted
	// only when BooksTable is empty.
	BooksTableParam string `env:"BOOKS_TABLE_PARAM"`

	GetBookDelay time.Duration `env:"GET_BOOK_DELAY" envDefault:"0s" validate:"gte=0"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"production" validate:"oneof=development production"`

	TracingEnabled bool          `env:"TRACING_ENABLED" envDefault:"false"`
	MaxBackoff     time.Duration `env:"DYNAMODB_MAX_BACKOFF" envDefault:"8s" validate:"gt=0"`
}

var validate = validator.New()

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its rules. An empty BooksTable is valid.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed rule %s=%s", e.Field(), e.Tag(), e.Param()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// IsDevelopment reports whether the Lambda runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// RequireTable reports whether table is set, logging a diagnostic when it is not.
// Handlers must not call the store when it returns false.
func RequireTable(logger *zap.Logger, table string) bool {
	if table == "" {
		logger.Error(TableEnvVar + " was not specified")
		return false
	}
	return true
}

// SSMGetParameterAPI allows reading a single SSM parameter.
type SSMGetParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ResolveTable fills in BooksTable from the SSM parameter named by BooksTableParam.
// It does nothing when BooksTable is already set or no parameter is named.
func (c *Config) ResolveTable(ctx context.Context, api SSMGetParameterAPI) error {
	if c.BooksTable != "" || c.BooksTableParam == "" {
		return nil
	}

	out, err := api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(c.BooksTableParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("could not get SSM parameter %s: %w", c.BooksTableParam, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return fmt.Errorf("SSM parameter %s has no value", c.BooksTableParam)
	}

	c.BooksTable = *out.Parameter.Value
	return nil
}
