package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"law-agenda-api/internal/auth"
	"law-agenda-api/internal/store"
)

const refreshTTL = 7 * 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login runs the approval-gated authentication flow. The distinct
// 404/403/401 responses are what the web client keys its messages on.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	if !u.Approved {
		c.JSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
		return
	}

	ok, needsRehash := auth.VerifyPassword(auth.ParseCredential(u.Password), req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}
	if needsRehash {
		// legacy plaintext row matched: upgrade it while we hold the password
		if digest, err := auth.HashPassword(req.Password); err == nil {
			if err := h.store.UpdatePassword(c.Request.Context(), u.ID, digest); err != nil {
				log.Printf("password rehash for user %d: %v", u.ID, err)
			}
		}
	}

	tok, err := auth.MakeToken(u.ID, u.IsAdmin, h.secret)
	if err != nil {
		internalError(c, err)
		return
	}
	if err := h.issueRefreshCookie(c, u.ID); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": u, "token": tok})
}

func (h *Handler) issueRefreshCookie(c *gin.Context, userID int64) error {
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return err
	}
	if _, err := h.store.CreateSession(c.Request.Context(), userID, hash, time.Now().Add(refreshTTL)); err != nil {
		return err
	}
	c.SetCookie("refresh_token", raw, int(refreshTTL.Seconds()), "/", "", false, true)
	return nil
}

// Refresh rotates the session and hands out a fresh access token.
func (h *Handler) Refresh(c *gin.Context) {
	raw, err := c.Cookie("refresh_token")
	if err != nil || raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}

	sess, err := h.store.SessionByHash(c.Request.Context(), auth.HashRefreshToken(raw))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	if sess.Revoked || time.Now().After(sess.ExpiresAt) {
		// reuse of a rotated token looks like theft; burn every session
		if err := h.store.RevokeAllSessions(c.Request.Context(), sess.UserID); err != nil {
			log.Printf("revoke sessions for user %d: %v", sess.UserID, err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired"})
		return
	}

	u, err := h.store.UserByID(c.Request.Context(), sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	if !u.Approved {
		c.JSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
		return
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		internalError(c, err)
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateSession(c.Request.Context(), sess.ID, newID, sess.UserID, newHash, time.Now().Add(refreshTTL)); err != nil {
		internalError(c, err)
		return
	}

	tok, err := auth.MakeToken(u.ID, u.IsAdmin, h.secret)
	if err != nil {
		internalError(c, err)
		return
	}
	c.SetCookie("refresh_token", newRaw, int(refreshTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": tok})
}

// Logout revokes the caller's sessions and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if raw, err := c.Cookie("refresh_token"); err == nil && raw != "" {
		if sess, err := h.store.SessionByHash(c.Request.Context(), auth.HashRefreshToken(raw)); err == nil {
			if err := h.store.RevokeAllSessions(c.Request.Context(), sess.UserID); err != nil {
				log.Printf("revoke sessions for user %d: %v", sess.UserID, err)
			}
		}
	}
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
