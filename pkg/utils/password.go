package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 默认代价；GenerateFromPassword 仅在代价越界时报错
func HashPassword(plain string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(h)
}

// CheckPassword 明文对哈希，常数时间比较由 bcrypt 保证
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
