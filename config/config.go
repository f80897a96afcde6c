package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config アプリケーション全体の設定。起動時に一度だけ読み込み、以降は不変
type Config struct {
	Port      string
	SecretKey string
	TokenTTL  time.Duration
}

const defaultTokenTTLMinutes = 60

// Load 環境変数から設定を読み込む。SECRET_KEYは必須
func Load() (*Config, error) {
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		return nil, errors.New("SECRET_KEY must be set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = os.Getenv("AWS_LWA_PORT")
	}
	if port == "" {
		port = "8080"
	}

	ttlMinutes := defaultTokenTTLMinutes
	if value := os.Getenv("TOKEN_TTL_MINUTES"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return nil, errors.New("TOKEN_TTL_MINUTES must be a positive integer")
		}
		ttlMinutes = parsed
	}

	return &Config{
		Port:      port,
		SecretKey: secretKey,
		TokenTTL:  time.Duration(ttlMinutes) * time.Minute,
	}, nil
}
