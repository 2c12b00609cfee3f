package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/config"
)

// GenerateToken creates a new JWT for a user and their browser session. The
// token only carries the claimed identity; nothing about it is verified
// beyond the signature.
func GenerateToken(userID uint, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"exp": time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
