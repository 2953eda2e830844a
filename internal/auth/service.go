// Package auth implements the registration and login pipelines shared by the
// user-facing pages and the admin panel.
package auth

import (
	"errors"
	"strings"
	"time"

	"idcard-system/internal/upload"

	"gorm.io/gorm"
)

type Service struct {
	DB             *gorm.DB
	Photos         *upload.Store
	MinPasswordLen int

	// Now is a clock override for tests; nil means time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// isUniqueViolation reports whether err is a duplicate-key error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// violatesColumn narrows a unique violation to a specific column. gorm's
// translated error does not say which constraint fired, so the driver
// message is inspected for the column name.
func violatesColumn(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), column)
}
