package auth

import (
	"testing"

	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLoginUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Register(validInput(t))
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.LoginUser("a@b.com", "Abcd1234")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginUser("a@b.com", "Abcd12345")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email gives the same error", func(t *testing.T) {
		_, err := svc.LoginUser("nobody@b.com", "Abcd1234")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.LoginUser("", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginAdmin(t *testing.T) {
	svc := newTestService(t)

	hash, err := security.HashPassword("Admin123!")
	require.NoError(t, err)
	require.NoError(t, svc.DB.Create(&models.Admin{Username: "admin", PasswordHash: hash}).Error)

	admin, err := svc.LoginAdmin("admin", "Admin123!")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	_, err = svc.LoginAdmin("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.LoginAdmin("ghost", "Admin123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdminLegacyUpgrade(t *testing.T) {
	svc := newTestService(t)

	digest := security.LegacyDigest("Secret123")
	require.NoError(t, svc.DB.Create(&models.Admin{Username: "admin", PasswordHash: digest}).Error)

	// first login matches the legacy digest and upgrades the stored hash
	admin, err := svc.LoginAdmin("admin", "Secret123")
	require.NoError(t, err)

	var stored models.Admin
	require.NoError(t, svc.DB.First(&stored, admin.ID).Error)
	assert.NotEqual(t, digest, stored.PasswordHash)
	assert.Equal(t, security.HashModern, security.ParseStoredHash(stored.PasswordHash).Kind)

	// the same password keeps working afterwards
	_, err = svc.LoginAdmin("admin", "Secret123")
	assert.NoError(t, err)

	// and the wrong one still does not
	_, err = svc.LoginAdmin("admin", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserLegacyUpgrade(t *testing.T) {
	svc := newTestService(t)

	user := models.User{
		Email:        "old@b.com",
		PasswordHash: security.LegacyDigest("Abcd1234"),
		FirstName:    "Old",
		LastName:     "Timer",
		DateOfBirth:  testNow.AddDate(-30, 0, 0),
		JobType:      models.JobOther,
		IDNumber:     "ID2016123456",
	}
	require.NoError(t, svc.DB.Create(&user).Error)

	_, err := svc.LoginUser("old@b.com", "Abcd1234")
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, svc.DB.First(&stored, user.ID).Error)
	assert.Equal(t, security.HashModern, security.ParseStoredHash(stored.PasswordHash).Kind)
	assert.True(t, security.ParseStoredHash(stored.PasswordHash).Verify("Abcd1234"))
}

func TestLoginLegacyUpgradeFailureStillLogsIn(t *testing.T) {
	svc := newTestService(t)

	digest := security.LegacyDigest("Secret123")
	require.NoError(t, svc.DB.Create(&models.Admin{Username: "admin", PasswordHash: digest}).Error)

	// sabotage the upgrade write; the login must still succeed
	require.NoError(t, svc.DB.Callback().Update().Before("gorm:update").
		Register("test_fail_update", func(tx *gorm.DB) {
			tx.AddError(assert.AnError)
		}))

	admin, err := svc.LoginAdmin("admin", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}
