package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"law-agenda-api/internal/auth"
	"law-agenda-api/internal/middleware"
	"law-agenda-api/internal/model"
	"law-agenda-api/internal/store"
)

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	CPF      string `json:"cpf"`
	Approved bool   `json:"approved"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateUser serves both public registration and admin creation. The approved
// and is_admin flags are honored only when the caller holds an admin token;
// anonymous registrations always start unapproved.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password required"})
		return
	}

	if !h.adminCaller(c) {
		req.Approved = false
		req.IsAdmin = false
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(c, err)
		return
	}

	u := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: digest,
		IsAdmin:  req.IsAdmin,
		Approved: req.Approved,
	}
	if err := h.store.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": u.ID})
}

// adminCaller checks the optional bearer token on an otherwise public route.
func (h *Handler) adminCaller(c *gin.Context) bool {
	raw := middleware.BearerToken(c)
	if raw == "" {
		return false
	}
	claims, err := auth.ParseToken(raw, h.secret)
	return err == nil && claims.IsAdmin
}

func (h *Handler) ListPending(c *gin.Context) {
	users, err := h.store.ListUsersByApproval(c.Request.Context(), false)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) ListApproved(c *gin.Context) {
	users, err := h.store.ListUsersByApproval(c.Request.Context(), true)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type idRequest struct {
	ID int64 `json:"id" binding:"required"`
}

func (h *Handler) ApproveUser(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	err := h.store.ApproveUser(c.Request.Context(), req.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RejectUser hard-deletes the account. There is no undo.
func (h *Handler) RejectUser(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	err := h.store.DeleteUser(c.Request.Context(), req.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ToggleAdmin(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	isAdmin, err := h.store.ToggleAdmin(c.Request.Context(), req.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "is_admin": isAdmin})
}
