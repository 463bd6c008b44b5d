package cmd

import "time"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	JWTSecret              string
	JWTTokenTTL            time.Duration
	NominatimBaseURL       string
	NominatimUserAgent     string
	GeocodeCacheTTL        time.Duration
	GeocodeCacheMaxEntries int
	RedisAddr              string
	BcryptCost             int
}
