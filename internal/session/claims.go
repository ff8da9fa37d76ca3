package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 是后端签发的 token 中我们关心的部分
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Inspect 解析 token 中的 claims 但不校验签名，签名密钥只有后端持有
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired 判断 token 在 now 时是否已经过期
//
// 无法解析的 token 或没有 exp 的 token 交给后端判断，这里视为未过期。
func Expired(token string, now time.Time) bool {
	claims, err := Inspect(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
