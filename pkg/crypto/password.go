package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt digest from plaintext. The per-call random
// salt is embedded in the digest, so two hashes of the same password differ.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// CheckPassword reports whether plain matches the stored digest. The compare
// is constant time; a malformed digest counts as a mismatch.
func CheckPassword(hash []byte, plain string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain)) == nil
}
