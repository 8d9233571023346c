package hash

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps offline brute force expensive; bcrypt's default of 10 is too
// cheap for stored marketplace credentials.
const Cost = 12

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}

	return string(hashBytes), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
