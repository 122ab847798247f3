package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing cost
const BcryptCost = 12

// TempPasswordLength is the length of generated temporary passwords
const TempPasswordLength = 8

const tempPasswordChars = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

// HashPassword hashes a plaintext password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against its hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateTempPassword generates a random temporary password. The student is
// expected to change it on first login; only its hash is ever stored.
func GenerateTempPassword() (string, error) {
	result := make([]byte, TempPasswordLength)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate temporary password: %w", err)
		}
		result[i] = tempPasswordChars[n.Int64()]
	}
	return string(result), nil
}
