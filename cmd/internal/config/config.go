package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	envVarsPrefix = "/localize/prod/"

	// JWTKeyMinLength is the smallest HMAC key accepted for HS256.
	JWTKeyMinLength = 32

	defaultPort            = 7070
	defaultDatabasePath    = "database.db"
	defaultRegistryBaseURL = "https://www.receitaws.com.br"
	defaultRegistryTimeout = 10 * time.Second
	defaultAWSRegion       = "us-east-2"
)

type Config struct {
	Port     int
	LogLevel string

	// DatabaseURL selects Postgres when set, otherwise SQLite at DatabasePath.
	DatabaseURL  string
	DatabasePath string

	JWTKey      string
	JWTIssuer   string
	JWTAudience string

	RegistryBaseURL string
	RegistryTimeout time.Duration
}

// LoadEnv populates the process environment: AWS SSM Parameter Store in
// production, a .env file otherwise.
func LoadEnv(ctx context.Context) error {
	if os.Getenv("GO_ENV") == "production" {
		return loadProdEnv(ctx)
	}

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded, using process environment: %v", err)
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabasePath:    getEnv("DATABASE_PATH", defaultDatabasePath),
		JWTKey:          os.Getenv("JWT_KEY"),
		JWTIssuer:       getEnv("JWT_ISSUER", "localize"),
		JWTAudience:     getEnv("JWT_AUDIENCE", "localize"),
		RegistryBaseURL: getEnv("REGISTRY_BASE_URL", defaultRegistryBaseURL),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(defaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	timeout, err := time.ParseDuration(getEnv("REGISTRY_TIMEOUT", defaultRegistryTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid REGISTRY_TIMEOUT: %w", err)
	}
	cfg.RegistryTimeout = timeout

	if len(cfg.JWTKey) < JWTKeyMinLength {
		return nil, fmt.Errorf("JWT_KEY must have at least %d bytes", JWTKeyMinLength)
	}
	return cfg, nil
}

// Level maps LOG_LEVEL into a gommon level, defaulting to INFO.
func (c *Config) Level() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getEnv("AWS_REGION", defaultAWSRegion)))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(envVarsPrefix)
	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := aws.ToString(param.Name)[prefixLength:]
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
	return nil
}
