package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"internhub/config"
	"internhub/database"
	"internhub/models"
	authValidators "internhub/validators/auth"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		SaltRound:              4,
		JWTKey:                 "test-secret",
		BaseURL:                "http://localhost:3000",
		ReviewDelayMinutes:     10,
		InternshipDurationDays: 30,
		RepoLinkMarker:         "github.com",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/auth/signup", authValidators.Signup(), Signup)
	app.Post("/auth/login", authValidators.Login(), Login)
	app.Patch("/auth/verify/email", authValidators.VerifyEmail(), VerifyEmail)
	app.Post("/auth/forgot/password", authValidators.ForgotPassword(), ForgotPassword)
	app.Patch("/auth/reset/password", authValidators.ResetPassword(), ResetPassword)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestSignupVerifyLogin(t *testing.T) {
	app, db := setupTestApp(t)

	status, _ := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Alice Intern",
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var user models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.False(t, user.IsVerified)
	assert.Len(t, user.VerificationCode, 6)

	// Login before verification is refused
	status, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "PATCH", "/auth/verify/email", fiber.Map{
		"email":            "alice@example.com",
		"verificationCode": user.VerificationCode,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, parsed := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, fiber.StatusOK, status)

	data := parsed["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Alice Intern",
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := setupTestApp(t)

	status, _ := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Alice Intern",
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").
		Update("is_verified", true).Error)

	status, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestVerifyExpiredCode(t *testing.T) {
	app, db := setupTestApp(t)

	status, _ := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Alice Intern",
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var user models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&user).Update("verification_code_expiry", expired).Error)

	status, _ = doJSON(t, app, "PATCH", "/auth/verify/email", fiber.Map{
		"email":            "alice@example.com",
		"verificationCode": user.VerificationCode,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestResetPassword(t *testing.T) {
	app, db := setupTestApp(t)

	status, _ := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Alice Intern",
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").
		Update("is_verified", true).Error)

	// Plant a known reset token the way ForgotPassword stores it
	rawToken := "raw-reset-token"
	expiry := time.Now().Add(10 * time.Minute)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").
		Updates(map[string]interface{}{
			"reset_token":        hashToken(rawToken),
			"reset_token_expiry": expiry,
		}).Error)

	status, parsed := doJSON(t, app, "PATCH", "/auth/reset/password", fiber.Map{
		"token":    rawToken,
		"password": "newstrongpassword",
	})
	require.Equal(t, fiber.StatusOK, status)
	data := parsed["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Old token is burned
	status, _ = doJSON(t, app, "PATCH", "/auth/reset/password", fiber.Map{
		"token":    rawToken,
		"password": "anotherpassword",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// New password works
	status, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "newstrongpassword",
	})
	assert.Equal(t, fiber.StatusOK, status)
}
