package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Token   *Token
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
		Storage *Storage
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	Storage struct {
		Bucket          string
		Region          string
		Endpoint        string
		AccessKeyID     string
		SecretAccessKey string
		PathStyle       bool
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	storage := &Storage{
		Bucket:          os.Getenv("STORAGE_BUCKET"),
		Region:          os.Getenv("STORAGE_REGION"),
		Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
		AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
		PathStyle:       os.Getenv("STORAGE_PATH_STYLE") == "true",
	}

	return &Container{
		App:     app,
		Token:   token,
		DB:      db,
		HTTP:    http,
		Redis:   redis,
		Storage: storage,
	}, nil
}

// TokenDuration parses the configured token lifetime, defaulting to 24h.
func (t *Token) TokenDuration() time.Duration {
	d, err := time.ParseDuration(t.Duration)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
