package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type (
	APP struct {
		Name        string
		Host        string
		Port        string
		Env         string
		JWTSecret   string
		FrontendURL string
		CORSOrigins []string
		AutoMigrate bool
	}
	DB struct {
		// URL wins over the discrete fields when set.
		URL      string
		User     string
		Password string
		Name     string
		Host     string
		Port     string
		MaxConns int32
	}
	S3 struct {
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		BucketUploads   string
		// Endpoint targets an S3-compatible store; empty means AWS.
		Endpoint string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Stripe struct {
		SecretKey      string
		WebhookSecret  string
		PriceIDStarter string
		PriceIDPremium string
	}
	Gemini struct {
		APIKey string
		Model  string
	}
	// Auth selects JWKS verification when Issuer is set, the shared secret otherwise.
	Auth struct {
		Issuer   string
		Audience string
		JWKSURL  string
	}
	JobSearch struct {
		BaseURL string
		APIKey  string
	}

	Config struct {
		App       APP
		DB        DB
		S3        S3
		MQ        MQ
		Stripe    Stripe
		Gemini    Gemini
		Auth      Auth
		JobSearch JobSearch
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return b
}

func getEnvInt32(key string, def int32) int32 {
	n, err := strconv.ParseInt(getEnv(key, ""), 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func Load() Config {
	app := APP{
		Name:        getEnv("SERVICE_NAME", "resume-evaluator-api"),
		Host:        getEnv("SERVICE_HOST", ""),
		Port:        getEnv("SERVICE_PORT", "8080"),
		Env:         getEnv("SERVICE_ENV", ""),
		JWTSecret:   getEnv("SERVICE_JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
	}
	db := DB{
		URL:      getEnv("DATABASE_URL", ""),
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
		MaxConns: getEnvInt32("POSTGRES_MAX_CONNS", 0),
	}
	s3 := S3{
		Region:          getEnv("S3_REGION", "us-east-1"),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		BucketUploads:   getEnv("S3_BUCKET_UPLOADS", ""),
		Endpoint:        getEnv("S3_ENDPOINT", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}

	stripe := Stripe{
		SecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		WebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
		PriceIDStarter: getEnv("STRIPE_PRICE_ID_STARTER", ""),
		PriceIDPremium: getEnv("STRIPE_PRICE_ID_PREMIUM", ""),
	}
	gemini := Gemini{
		APIKey: getEnv("GEMINI_API_KEY", ""),
		Model:  getEnv("GEMINI_MODEL", ""),
	}
	auth := Auth{
		Issuer:   getEnv("AUTH_ISSUER", ""),
		Audience: getEnv("AUTH_AUDIENCE", ""),
		JWKSURL:  getEnv("AUTH_JWKS_URL", ""),
	}
	jobSearch := JobSearch{
		BaseURL: getEnv("JSEARCH_BASE_URL", ""),
		APIKey:  getEnv("RAPIDAPI_KEY", ""),
	}

	return Config{
		App:       app,
		DB:        db,
		S3:        s3,
		MQ:        mq,
		Stripe:    stripe,
		Gemini:    gemini,
		Auth:      auth,
		JobSearch: jobSearch,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.URL != "" {
		return c.DB.URL, nil
	}
	return c.DB.DSN()
}

func (d DB) DSN() (string, error) {
	if d.User == "" || d.Name == "" || d.Host == "" || d.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s",
		url.UserPassword(d.User, d.Password).String(),
		d.Host,
		d.Port,
		d.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
