package auth

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"idcard-system/internal/database"
	"idcard-system/internal/upload"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a pooled second connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	photos, err := upload.NewStore(t.TempDir(), 5*1024*1024,
		[]string{"image/jpeg", "image/jpg", "image/png", "image/webp"})
	require.NoError(t, err)

	return &Service{
		DB:             newTestDB(t),
		Photos:         photos,
		MinPasswordLen: 8,
		Now:            func() time.Time { return testNow },
	}
}

func pngUpload(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = fw.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["photo"][0]
}

func validInput(t *testing.T) RegisterInput {
	return RegisterInput{
		Email:           "a@b.com",
		Password:        "Abcd1234",
		ConfirmPassword: "Abcd1234",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		DateOfBirth:     "2006-08-15", // 20 years before testNow
		JobType:         "Student",
		Photo:           pngUpload(t, "ada.png"),
	}
}
