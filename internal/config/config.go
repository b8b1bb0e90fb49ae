package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendMemory   = "memory"
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendRedis    = "redis"
)

// Config is the process configuration read from the environment (and a
// .env file when present).
type Config struct {
	Port string

	StoreBackend   string
	StoreTable     string
	StoreKeyPrefix string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PublicBaseURL string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	CheckoutFallbackURL    string

	GeminiAPIKey   string
	AssistantModel string

	WarrantyHorizonDays int
}

// Load reads the configuration. It only fails on values that are present
// but unusable.
func Load() (Config, error) {
	port := getenvDefault("PORT", "8080")
	cfg := Config{
		Port:                   port,
		StoreBackend:           strings.ToLower(getenvDefault("STORE_BACKEND", StoreBackendMemory)),
		StoreTable:             getenvDefault("STORE_TABLE", "portal_store"),
		StoreKeyPrefix:         getenvDefault("STORE_KEY_PREFIX", "bengal_"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:     getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		RedisAddr:              getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		PublicBaseURL:          strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		CheckoutFallbackURL:    getenvDefault("CHECKOUT_FALLBACK_URL", "https://www.paypal.com/checkoutnow"),
		GeminiAPIKey:           strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AssistantModel:         getenvDefault("ASSISTANT_MODEL", "gemini-3-flash-preview"),
	}

	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendDynamoDB, StoreBackendRedis:
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q", cfg.StoreBackend)
	}

	var err error
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WarrantyHorizonDays, err = getenvInt("WARRANTY_EXPIRING_HORIZON_DAYS", 90); err != nil {
		return Config{}, err
	}
	if cfg.WarrantyHorizonDays < 0 {
		return Config{}, fmt.Errorf("invalid WARRANTY_EXPIRING_HORIZON_DAYS %d", cfg.WarrantyHorizonDays)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
