package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

// JWTCookieName carries the token for browser sessions on the admin pages.
const JWTCookieName = "backoffice_token"

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 24 * time.Hour
}

// SetJWT overrides the signing secret and token lifetime. Empty or zero values
// keep the current setting.
func SetJWT(secret string, expiration time.Duration) {
	if secret != "" {
		JWTSecret = []byte(secret)
	}
	if expiration > 0 {
		JWTExpiration = expiration
	}
}
