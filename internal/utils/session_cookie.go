package utils

import (
	"errors"
	"fmt"
	"time"

	"community-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieIssuer = "community-server"

// SessionCookieClaims 会话 Cookie 的载荷，Subject 为不透明的会话令牌。
type SessionCookieClaims struct {
	jwt.RegisteredClaims
}

// 配置未加载时（如单元测试）使用开发密钥，release 模式在配置加载阶段已拒绝空密钥。
func getSecret() []byte {
	secret := config.Get().Session.Secret
	if secret == "" {
		secret = "community_session_secret"
	}
	return []byte(secret)
}

// SignSessionCookie 对会话令牌签名，生成写入 Cookie 的值。
func SignSessionCookie(token string, expiresAt time.Time) (string, error) {
	claims := SessionCookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   token,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    sessionCookieIssuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSecret())
}

// ParseSessionCookie 校验签名与过期时间，返回其中的会话令牌。
func ParseSessionCookie(value string) (string, error) {
	parsed, err := jwt.ParseWithClaims(value, &SessionCookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	}, jwt.WithIssuer(sessionCookieIssuer))
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*SessionCookieClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.Subject, nil
}
