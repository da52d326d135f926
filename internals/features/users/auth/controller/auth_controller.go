package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vedaschool_backend/internals/configs"
	authDTO "vedaschool_backend/internals/features/users/auth/dto"
	authModel "vedaschool_backend/internals/features/users/auth/model"
	helper "vedaschool_backend/internals/helpers"
	authMW "vedaschool_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

// POST /api/a/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	u := authModel.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hash),
		UserRole:     req.Role,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		return helper.TranslateDBError(err, "User not found", "Email already registered")
	}
	return helper.JsonCreated(c, "User registered", authDTO.FromUserModel(u))
}

// POST /api/public/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u authModel.UserModel
	if err := h.DB.Where("user_email = ? AND user_is_active = ?", req.Email, true).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signAccessToken(u)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		User:        authDTO.FromUserModel(u),
	})
}

// GET /api/u/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	uid, err := authMW.UserIDFromCtx(c)
	if err != nil {
		return err
	}
	var u authModel.UserModel
	if err := h.DB.First(&u, "user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Profile", authDTO.FromUserModel(u))
}

func signAccessToken(u authModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"name": u.UserName,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}
