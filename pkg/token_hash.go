package pkg

import "golang.org/x/crypto/bcrypt"

const DefaultTokenHashCost = 12

// HashToken returns the bcrypt hash of an API token, as expected by CheckTokenHash.
func HashToken(token string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultTokenHashCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", err
	}
	return BytesToString(hash), nil
}

func CheckTokenHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
