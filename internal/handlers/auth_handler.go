package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finwise/internal/errors"
	"finwise/internal/middleware"
	"finwise/internal/models"
	"finwise/internal/services"
)

// AuthHandler handles authentication and profile requests
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, auditService: auditService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email,max=255"`
	Username string          `json:"username" binding:"required,alphanum,min=3,max=30"`
	Password string          `json:"password" binding:"required,min=8,max=128"`
	FullName string          `json:"full_name" binding:"max=100"`
	Currency models.Currency `json:"currency" binding:"omitempty,currency"`
}

// VerifyRequest carries the emailed verification code.
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,numeric,len=7"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token to exchange.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest holds the profile fields to change; omitted fields are kept.
type UpdateProfileRequest struct {
	FullName      *string          `json:"full_name" binding:"omitempty,max=100"`
	Username      *string          `json:"username" binding:"omitempty,alphanum,min=3,max=30"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary" binding:"omitempty,gte=0"`
	Currency      *models.Currency `json:"currency" binding:"omitempty,currency"`
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// AuthResponse is the token pair together with the user it was issued for
type AuthResponse struct {
	middleware.TokenPair
	User *models.User `json:"user"`
}

// UserResponse wraps a single user
type UserResponse struct {
	User *models.User `json:"user"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Create an unverified account and email a 7-digit verification code
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} UserResponse "User registered, verification pending"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email or username taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		Currency: req.Currency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, "REGISTER", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, UserResponse{User: user})
}

// Verify confirms the emailed code and logs the user in
// @Summary     Verify email
// @Description Confirm the verification code and receive tokens
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body VerifyRequest true "Email and code"
// @Success     200 {object} AuthResponse "Account verified"
// @Failure     400 {object} ErrorResponse "Invalid or expired code"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	user, err := h.userService.Verify(req.Email, req.Code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, "VERIFY", "user", user.ID, c.ClientIP(), nil)
	h.issueTokens(c, user)
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get an access and refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     403 {object} ErrorResponse "Account not verified"
// @Failure     423 {object} ErrorResponse "Account locked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.issueTokens(c, user)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary     Refresh tokens
// @Description Rotate the refresh token and get a new access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Refresh token"
// @Success     200 {object} AuthResponse "New tokens"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	claims, err := middleware.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	stored, err := h.userService.GetRefreshTokenHash(claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}
	presented := middleware.HashToken(req.RefreshToken)
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) != 1 {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.issueTokens(c, user)
}

func (h *AuthHandler) issueTokens(c *gin.Context, user *models.User) {
	pair, err := middleware.GenerateTokenPair(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	if err := h.userService.StoreRefreshTokenHash(user.ID, middleware.HashToken(pair.RefreshToken)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{TokenPair: *pair, User: user})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user})
}

// UpdateProfile changes the profile fields present in the request
// @Summary     Update user profile
// @Description Update full name, username, monthly salary or currency
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} UserResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Username taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.ProfileUpdate{
		FullName:      req.FullName,
		Username:      req.Username,
		MonthlySalary: req.MonthlySalary,
		Currency:      req.Currency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.MonthlySalary != nil {
		changes["monthly_salary"] = req.MonthlySalary.String()
	}
	if req.Username != nil {
		changes["username"] = *req.Username
	}
	h.auditService.Log(userID, "UPDATE_PROFILE", "user", userID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, UserResponse{User: user})
}

// ChangePassword replaces the user's password
// @Summary     Change password
// @Description Change the password after confirming the current one
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChangePasswordRequest true "Current and new password"
// @Success     200 {object} MessageResponse "Password changed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Current password is incorrect"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	if err := h.userService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CHANGE_PASSWORD", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}
