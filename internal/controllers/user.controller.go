package controllers

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles registration, login, password reset and the
// /api/users REST mirror.
type UserController struct {
	users     repository.UserRepository
	resets    repository.ResetPasswordRepository
	jwtSecret string
	log       zerolog.Logger
}

func NewUserController(users repository.UserRepository, resets repository.ResetPasswordRepository, jwtSecret string, log zerolog.Logger) *UserController {
	return &UserController{users: users, resets: resets, jwtSecret: jwtSecret, log: log}
}

func (uc *UserController) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.jwtSecret))
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	FullName string `json:"full_name"`
	PenName  string `json:"pen_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// registrableRoles are the roles an account can self-select; everything
// privileged is granted by an admin afterwards.
var registrableRoles = map[models.Role]bool{
	models.RoleGuest:      true,
	models.RoleSubscriber: true,
	models.RoleWriter:     true,
	models.RoleEditor:     true,
}

// Register creates an unverified account.
func (uc *UserController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleGuest
	}
	if !registrableRoles[role] {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Role cannot be self-assigned",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	dob, _ := time.Parse("2006-01-02", req.DOB)
	user := &models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		FullName: req.FullName,
		PenName:  req.PenName,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		DOB:      dob,
		Gender:   req.Gender,
		Country:  req.Country,
		Phone:    req.Phone,
		Verified: false,
	}

	if err := uc.users.Create(c.Request.Context(), user); err != nil {
		uc.log.Error().Err(err).Str("email", req.Email).Msg("user create failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
		})
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a bearer token.
func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}
	if user.Ban {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Account is banned",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Incorrect email or password",
		})
		return
	}

	token, err := uc.issueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data":    gin.H{"token": token, "user": user},
	})
}

// GoogleAuth verifies a Google ID token and signs the matching account in,
// creating a guest account on first sight.
func (uc *UserController) GoogleAuth(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify token with Google",
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
		})
		return
	}

	var tokenInfo struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil || tokenInfo.Email == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to decode token info",
		})
		return
	}

	user, err := uc.users.FindByEmail(c.Request.Context(), tokenInfo.Email)
	if err != nil {
		user = &models.User{
			ID:       uuid.NewString(),
			Name:     tokenInfo.Name,
			Email:    tokenInfo.Email,
			Role:     models.RoleGuest,
			Verified: true,
		}
		if err := uc.users.Create(c.Request.Context(), user); err != nil {
			uc.log.Error().Err(err).Str("email", tokenInfo.Email).Msg("google account create failed")
			respondError(c, err)
			return
		}
	}
	if user.Ban {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Account is banned",
		})
		return
	}

	token, err := uc.issueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data":    gin.H{"token": token, "user": user},
	})
}

// ForgotPassword issues a reset code. The response never reveals whether
// the email exists.
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		_ = uc.resets.DeleteByEmail(c.Request.Context(), req.Email)

		n, _ := rand.Int(rand.Reader, big.NewInt(1000000))
		code := fmt.Sprintf("%06d", n.Int64())

		reset := &models.ResetPassword{
			Email:     req.Email,
			Code:      code,
			ExpiresAt: time.Now().Add(15 * time.Minute),
		}
		if err := uc.resets.Create(c.Request.Context(), reset); err != nil {
			uc.log.Error().Err(err).Str("email", req.Email).Msg("reset code create failed")
		}
		// Delivery of the code is the mail collaborator's concern.
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "If the email exists, a reset code has been sent",
	})
}

// ResetPassword consumes a valid reset code and sets a new password.
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Code     string `json:"code" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.resets.FindByEmailAndCode(c.Request.Context(), req.Email, req.Code); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired reset code",
		})
		return
	}

	user, err := uc.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uc.users.Patch(c.Request.Context(), user.ID, map[string]interface{}{"password": string(hashed)}); err != nil {
		respondError(c, err)
		return
	}
	_ = uc.resets.DeleteByEmail(c.Request.Context(), req.Email)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset successfully",
	})
}

// Me returns the authenticated account.
func (uc *UserController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

type profileUpdate struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	PenName  string `json:"pen_name"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// UpdateMe patches the caller's own profile fields.
func (uc *UserController) UpdateMe(c *gin.Context) {
	var req profileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	data := map[string]interface{}{}
	if req.Name != "" {
		data["name"] = req.Name
	}
	if req.FullName != "" {
		data["full_name"] = req.FullName
	}
	if req.PenName != "" {
		data["pen_name"] = req.PenName
	}
	if req.Gender != "" {
		data["gender"] = req.Gender
	}
	if req.Country != "" {
		data["country"] = req.Country
	}
	if req.Phone != "" {
		data["phone"] = req.Phone
	}

	user := middleware.CurrentUser(c)
	if err := uc.users.Patch(c.Request.Context(), user.ID, data); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
	})
}

// GetUser returns one user record (API mirror, admin only).
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// UpdateUser applies a partial update to a user record (API mirror).
func (uc *UserController) UpdateUser(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	delete(data, "id")
	delete(data, "password")

	if _, err := uc.users.FindByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	if err := uc.users.Patch(c.Request.Context(), c.Param("id"), data); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
	})
}

// DeleteUser removes a user record (API mirror).
func (uc *UserController) DeleteUser(c *gin.Context) {
	if _, err := uc.users.FindByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	if err := uc.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
