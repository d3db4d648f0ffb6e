package config

import (
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	JWTSecret = []byte("your-secret-key-change-this-in-production")
	JWTExpiration = 24 * time.Hour
}

// SetJWT replaces the signing secret and token lifetime loaded at startup.
func SetJWT(cfg JWTConfig) {
	if cfg.Secret != "" {
		JWTSecret = []byte(cfg.Secret)
	}
	if cfg.Expiration > 0 {
		JWTExpiration = cfg.Expiration
	}
}
