package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when login hits an unknown username, so
// that the "no such user" path costs roughly the same as a real bcrypt
// comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)

// HashPassword returns a salted bcrypt hash. Hashing the same password
// twice yields different strings; the hash is never reversible.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash. Any failure,
// including a malformed hash, is a plain mismatch.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnCompare performs a throwaway bcrypt comparison. Call it on the
// unknown-username login path to keep its duration close to the
// known-username path.
func BurnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
