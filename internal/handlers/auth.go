package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quickbite/internal/middleware"
	"github.com/example/quickbite/internal/services"
	"github.com/example/quickbite/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signUpRequest struct {
	FirstName   string `json:"firstName" validate:"required,personname"`
	LastName    string `json:"lastName" validate:"required,personname"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Address     string `json:"address" validate:"required"`
	Password    string `json:"password" validate:"required,password"`
}

// SignUp creates a new, unverified customer account.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.auth.SignUp(c.UserContext(), services.SignUpInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return utils.Respond(c, fiber.StatusCreated, "user account created successfully", token, user)
}

type verifyRequest struct {
	OTP string `json:"otp" validate:"required,otp"`
}

// Verify activates the caller's account with the code they received.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.auth.Verify(c.UserContext(), middleware.GetPrincipal(c), req.OTP)
	if err != nil {
		return err
	}

	return utils.Respond(c, fiber.StatusOK, "account verified successfully", "", user)
}

// ResendOTP issues a fresh verification code.
func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	if err := h.auth.ResendOTP(c.UserContext(), middleware.GetPrincipal(c)); err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "a new verification code has been sent", "", nil)
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Password    string `json:"password" validate:"required"`
}

// Login authenticates an existing user.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.auth.Login(c.UserContext(), req.PhoneNumber, req.Password)
	if err != nil {
		return err
	}

	return utils.Respond(c, fiber.StatusOK, "user logged in successfully", token, user)
}

// Logout revokes the token the request was made with.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := services.BearerToken(c.Get(fiber.HeaderAuthorization))
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return utils.Respond(c, fiber.StatusOK, "user logged out successfully", "", nil)
}
