package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and the current-user lookup.
type AuthHandler struct {
	Users      *store.Users
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(users *store.Users, secret, issuer string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Users:      users,
		JWTSecret:  secret,
		JWTIssuer:  issuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Name     string `json:"name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userResp(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}

// Register creates an account and returns a signed token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	errs := map[string]string{}
	if req.Name == "" {
		errs["name"] = "Please add a name"
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		errs["email"] = "Please add a valid email"
	}
	if len(req.Password) < 6 || len(req.Password) > 72 {
		errs["password"] = "Password must be 6 to 72 characters"
	}
	if len(errs) > 0 {
		util.Invalid(c, errs)
		return
	}

	taken, err := h.Users.EmailTaken(c.Request.Context(), req.Email)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	if taken {
		util.Error(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"token": token,
		"data":  userResp(&user),
	})
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"token": token,
		"data":  userResp(user),
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	util.Success(c, http.StatusOK, util.Response{
		"data": userResp(user),
	})
}
