package models

import "golang.org/x/crypto/bcrypt"

// DefaultAdminName is used when provisioning the initial account.
const DefaultAdminName = "Admin"

// User models the single watchlist owner account.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// SetPassword replaces the stored credential with a bcrypt digest of
// plain. The plaintext is never persisted.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// ValidatePassword reports whether plain matches the stored digest.
// A user without a credential never validates.
func (u *User) ValidatePassword(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
