// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"crypto/subtle"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"billeasy_backend/internals/configs"
	"billeasy_backend/internals/constants"
	dto "billeasy_backend/internals/features/users/auth/dto"
	authModel "billeasy_backend/internals/features/users/auth/model"
	helper "billeasy_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

// AuthController: login satu akun admin (kredensial dari ENV),
// logout via token blacklist. Bukan desain protokol sendiri —
// sekadar sesi JWT standar untuk dashboard admin.
type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Login ==========
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(configs.AdminEmail))) != 1 {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       email,
		"user_name": configs.AdminName,
		"role":      constants.RoleAdmin,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] sign token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login success", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTTL.Seconds()),
		UserName:    configs.AdminName,
		Role:        constants.RoleAdmin,
	})
}

// ========== Logout (blacklist token sampai expired) ==========
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing bearer token")
	}
	tokenString := strings.TrimSpace(parts[1])

	// exp diambil dari klaim supaya blacklist bisa dibersihkan setelah lewat
	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := authModel.TokenBlacklist{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiredAt: expiredAt,
		TokenBlacklistCreatedAt: time.Now(),
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist → idempotent, anggap sukses
		log.Println("[WARNING] blacklist insert:", err)
	}

	return helper.Success(c, "Logged out", nil)
}

// ========== Me ==========
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	return helper.Success(c, "OK", fiber.Map{
		"user_id":   c.Locals("user_id"),
		"user_name": c.Locals("user_name"),
		"role":      c.Locals("role"),
	})
}
