package handler

import (
	"net/http"
	"strings"

	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves profile and password updates.
type ProfileHandler struct {
	Users      *store.Users
	BcryptCost int
}

func NewProfileHandler(users *store.Users, bcryptCost int) *ProfileHandler {
	return &ProfileHandler{Users: users, BcryptCost: bcryptCost}
}

type updateProfileReq struct {
	Name string `json:"name" binding:"required,max=64"`
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// Update changes the display name of the current user.
func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Invalid(c, map[string]string{"name": "Please add a name of at most 64 characters"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Invalid(c, map[string]string{"name": "Please add a name"})
		return
	}

	if err := h.Users.UpdateName(c.Request.Context(), user.ID, req.Name); err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	user.Name = req.Name

	util.Success(c, http.StatusOK, util.Response{
		"data": userResp(user),
	})
}

// ChangePassword verifies the old password and stores a new hash.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Invalid(c, map[string]string{"new_password": "Password must be 6 to 72 characters"})
		return
	}

	if !util.CheckPassword(req.OldPassword, user.PasswordHash) {
		util.Error(c, http.StatusBadRequest, "Old password is incorrect")
		return
	}

	hash, err := util.HashPassword(req.NewPassword, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	if err := h.Users.UpdatePassword(c.Request.Context(), user.ID, hash); err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": "Password updated",
	})
}
