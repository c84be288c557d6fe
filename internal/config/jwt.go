package config

import "time"

// JWTConfig содержит настройки для JWT токенов и хэширования паролей.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"APP_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TokenTTL   string `yaml:"token_ttl" env:"APP_JWT_TOKEN_TTL" env-default:"100h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"APP_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 100 * time.Hour
	}
	return duration
}
