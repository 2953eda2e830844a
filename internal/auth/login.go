package auth

import (
	"log"

	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"gorm.io/gorm"
)

// LoginUser verifies a user's email/password pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) LoginUser(email, password string) (*models.User, error) {
	email = security.SanitizeInput(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, &StorageError{Op: "lookup user", Err: err}
	}

	newHash, ok := s.verifyAndMaybeUpgrade(password, user.PasswordHash, func(hash string) error {
		return s.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("password_hash", hash).Error
	})
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if newHash != "" {
		user.PasswordHash = newHash
	}
	return &user, nil
}

// LoginAdmin verifies an operator's username/password pair against the
// separate admin namespace.
func (s *Service) LoginAdmin(username, password string) (*models.Admin, error) {
	username = security.SanitizeInput(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, &StorageError{Op: "lookup admin", Err: err}
	}

	newHash, ok := s.verifyAndMaybeUpgrade(password, admin.PasswordHash, func(hash string) error {
		return s.DB.Model(&models.Admin{}).Where("id = ?", admin.ID).Update("password_hash", hash).Error
	})
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if newHash != "" {
		admin.PasswordHash = newHash
	}
	return &admin, nil
}

// verifyAndMaybeUpgrade checks the password against the stored hash in
// whichever format it is in. A successful legacy match triggers a one-time
// rehash to bcrypt through persist; that write is best-effort and never
// fails the login. Returns the new hash when an upgrade was persisted.
func (s *Service) verifyAndMaybeUpgrade(password, stored string, persist func(hash string) error) (string, bool) {
	ph := security.ParseStoredHash(stored)
	if !ph.Verify(password) {
		return "", false
	}

	if ph.Kind == security.HashLegacy {
		newHash, err := security.HashPassword(password)
		if err != nil {
			log.Printf("legacy password upgrade: hash failed: %v", err)
			return "", true
		}
		if err := persist(newHash); err != nil {
			log.Printf("legacy password upgrade: persist failed: %v", err)
			return "", true
		}
		return newHash, true
	}
	return "", true
}
