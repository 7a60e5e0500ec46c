package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticAWS(o *awsconfig.LoadOptions) error {
	o.Region = "us-east-1"
	o.Credentials = credentials.NewStaticCredentialsProvider("AKID", "SECRET", "")
	return nil
}

func TestLoad(t *testing.T) {
	t.Setenv("BOOKS_TABLE", "BooksTable")
	t.Setenv("BOOKS_TABLE_PARAM", "")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "error")

	env, err := Load(context.Background(), staticAWS)
	require.NoError(t, err)

	assert.Equal(t, "BooksTable", env.Config.BooksTable)
	assert.NotNil(t, env.Logger)
	assert.NotNil(t, env.Store)
}

func TestLoad_MissingTableIsNotFatal(t *testing.T) {
	t.Setenv("BOOKS_TABLE", "")
	t.Setenv("BOOKS_TABLE_PARAM", "")

	env, err := Load(context.Background(), staticAWS)
	require.NoError(t, err)
	assert.Empty(t, env.Config.BooksTable)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load(context.Background(), staticAWS)
	assert.Error(t, err)
}

func TestNewDynamoDBClient(t *testing.T) {
	cfg := aws.Config{Region: "us-east-1"}
	c := newDynamoDBClient(cfg, 2*time.Second)
	require.NotNil(t, c)
	assert.NotNil(t, c.Options().Retryer)
}
