package auth

import (
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"time"
	"unicode"

	"idcard-system/internal/idnumber"
	"idcard-system/internal/models"
	"idcard-system/internal/security"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has a standard address shape.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	DateOfBirth     string // form value, expected 2006-01-02
	JobType         string
	Photo           *multipart.FileHeader
}

// Register runs the whole registration pipeline: validation in a fixed
// short-circuit order, photo move, id number allocation, hash, insert, and
// the compensating photo delete when the insert fails. On success it returns
// the freshly minted id number, the only durable identifier the user is told
// to keep.
func (s *Service) Register(in RegisterInput) (string, error) {
	in.Email = security.SanitizeInput(in.Email)
	in.FirstName = security.SanitizeInput(in.FirstName)
	in.LastName = security.SanitizeInput(in.LastName)
	in.DateOfBirth = security.SanitizeInput(in.DateOfBirth)
	in.JobType = security.SanitizeInput(in.JobType)

	now := s.now()

	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" ||
		in.DateOfBirth == "" || in.JobType == "" {
		return "", validationErr("All fields are required.")
	}

	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return "", validationErr("Invalid date of birth.")
	}
	if dob.After(now) {
		return "", validationErr("Date of birth cannot be in the future.")
	}
	// reject if dob > now - 18y, i.e. not yet 18
	if dob.After(now.AddDate(-18, 0, 0)) {
		return "", validationErr("You must be at least 18 years old to register.")
	}

	if !ValidEmail(in.Email) {
		return "", validationErr("Invalid email format.")
	}
	if len(in.Password) < s.MinPasswordLen {
		return "", validationErr(fmt.Sprintf("Password must be at least %d characters long.", s.MinPasswordLen))
	}
	if !passwordMeetsPolicy(in.Password) {
		return "", validationErr("Password must contain at least one lowercase letter, one uppercase letter, and one number.")
	}
	if in.Password != in.ConfirmPassword {
		return "", validationErr("Passwords do not match.")
	}
	if in.Photo == nil {
		return "", validationErr("Please upload a photo.")
	}
	if !models.ValidJobType(in.JobType) {
		return "", validationErr("Please select a valid job type.")
	}
	if errs := s.Photos.Validate(in.Photo); len(errs) > 0 {
		return "", validationErr(strings.Join(errs, " "))
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return "", &StorageError{Op: "check email", Err: err}
	}
	if count > 0 {
		return "", ErrEmailTaken
	}

	// Phase one of the two-phase write: move the photo into the store under
	// a generated name. From here on every failure path must remove it.
	photoName, err := s.Photos.Save(in.Photo)
	if err != nil {
		return "", &StorageError{Op: "save photo", Err: err}
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		_ = s.Photos.Remove(photoName)
		return "", &StorageError{Op: "hash password", Err: err}
	}

	// The generate-then-insert pair can race with a concurrent registration
	// picking the same id number; the unique index turns that into an insert
	// error, which is answered by regenerating and trying again.
	const maxInsertAttempts = 3
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		idNumber, err := idnumber.Generate(now, func(candidate string) (bool, error) {
			var n int64
			if err := s.DB.Model(&models.User{}).Where("id_number = ?", candidate).Count(&n).Error; err != nil {
				return false, &StorageError{Op: "check id number", Err: err}
			}
			return n > 0, nil
		})
		if err != nil {
			_ = s.Photos.Remove(photoName)
			return "", err
		}

		user := models.User{
			Email:        in.Email,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			DateOfBirth:  dob,
			JobType:      models.JobType(in.JobType),
			Photo:        photoName,
			IDNumber:     idNumber,
		}

		err = s.DB.Create(&user).Error
		if err == nil {
			return idNumber, nil
		}
		if isUniqueViolation(err) {
			if violatesColumn(err, "email") {
				// the unique index caught a race the pre-check missed
				_ = s.Photos.Remove(photoName)
				return "", ErrEmailTaken
			}
			// id_number collision slipped past the pre-check: regenerate
			continue
		}
		// Compensate by deleting the already-moved photo so a failed
		// registration never leaves an orphaned file.
		_ = s.Photos.Remove(photoName)
		return "", &StorageError{Op: "insert user", Err: err}
	}

	_ = s.Photos.Remove(photoName)
	return "", &StorageError{Op: "insert user", Err: idnumber.ErrExhausted}
}

func passwordMeetsPolicy(pw string) bool {
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
