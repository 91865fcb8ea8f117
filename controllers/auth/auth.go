package authController

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"internhub/config"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/utils"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationCodeTTL = 10 * time.Minute
	resetTokenTTL       = 10 * time.Minute
)

// generateVerificationCode returns a 6-character uppercase hex code.
func generateVerificationCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func Signup(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	code, err := generateVerificationCode()
	if err != nil {
		log.Printf("Error generating verification code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	codeExpiry := time.Now().Add(verificationCodeTTL)

	newUser := models.User{
		Name:                   reqData.Name,
		Email:                  reqData.Email,
		Password:               string(hashedPassword),
		VerificationCode:       code,
		VerificationCodeExpiry: &codeExpiry,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	utils.SendVerificationEmail(newUser.Email, newUser.Name, code)

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered, verification email sent.", newUser)
}

func VerifyEmail(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerification").(*struct {
		Email            string `json:"email"`
		VerificationCode string `json:"verificationCode"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}

	if user.IsVerified {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User is already verified!", nil)
	}

	if user.VerificationCode != strings.ToUpper(reqData.VerificationCode) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code!", nil)
	}

	if user.VerificationCodeExpiry != nil && user.VerificationCodeExpiry.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code expired!", nil)
	}

	err := db.Model(&user).Updates(map[string]interface{}{
		"is_verified":              true,
		"verification_code":        "",
		"verification_code_expiry": nil,
	}).Error
	if err != nil {
		log.Printf("Error verifying user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User verified successfully!", nil)
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if !user.IsVerified {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Email not verified!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	db.Model(&user).Update("last_login", time.Now())

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEmail").(*struct {
		Email string `json:"email"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	resetToken := uuid.NewString()
	tokenExpiry := time.Now().Add(resetTokenTTL)

	err := db.Model(&user).Updates(map[string]interface{}{
		"reset_token":        hashToken(resetToken),
		"reset_token_expiry": tokenExpiry,
	}).Error
	if err != nil {
		log.Printf("Error storing reset token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	resetURL := fmt.Sprintf("%s/auth/reset/password?token=%s", config.AppConfig.BaseURL, resetToken)
	utils.SendPasswordResetEmail(user.Email, user.Name, resetURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset link sent to your email.", nil)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReset").(*struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	var user models.User
	err := db.Where("reset_token = ? AND reset_token_expiry > ? AND is_deleted = ?",
		hashToken(reqData.Token), time.Now(), false).First(&user).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired token!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	err = db.Model(&user).Updates(map[string]interface{}{
		"password":           string(hashedPassword),
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error
	if err != nil {
		log.Printf("Error resetting password for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successful!", fiber.Map{
		"token": token,
	})
}

// GetProfile returns the authenticated user's own record.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}
