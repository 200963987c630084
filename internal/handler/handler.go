package handler

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"law-agenda-api/internal/middleware"
	"law-agenda-api/internal/store"
)

type Handler struct {
	store  *store.Store
	secret string
}

func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}

// NewRouter wires the REST surface. origins is the CORS allow-list.
func NewRouter(h *Handler, rl *middleware.RateLimiter, origins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	limited := middleware.RateLimit(rl)
	r.POST("/login", limited, h.Login)
	r.POST("/refresh", h.Refresh)
	r.POST("/logout", h.Logout)
	r.POST("/users", limited, h.CreateUser)

	authed := r.Group("", middleware.RequireAuth(h.secret))
	{
		authed.GET("/users/approved", h.ListApproved)
		authed.GET("/schedules", h.ListSchedules)
		authed.GET("/schedules/:key", h.GetSchedule)
		authed.POST("/schedules", h.CreateSchedule)
		authed.PUT("/schedules/:id", h.UpdateSchedule)
		authed.DELETE("/schedules/:id", h.DeleteSchedule)
		authed.GET("/calendar/:year/:month", h.Calendar)
	}

	admin := authed.Group("", middleware.RequireAdmin())
	{
		admin.GET("/users/pending", h.ListPending)
		admin.PUT("/users/approve", h.ApproveUser)
		admin.DELETE("/users/reject", h.RejectUser)
		admin.PUT("/users/admin", h.ToggleAdmin)
	}

	return r
}

// store failures are logged server-side and surface as a generic 500
func internalError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
