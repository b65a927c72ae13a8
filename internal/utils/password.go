package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 生成 bcrypt 摘要，摘要内含盐值和成本参数。
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 校验明文与摘要是否匹配，摘要格式非法时返回 false。
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
