package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/developpeurInf/focus-academia-hub/internal/auth"
	"github.com/developpeurInf/focus-academia-hub/internal/model"
	"github.com/developpeurInf/focus-academia-hub/internal/store"
)

// Handler wires the HTTP surface to the store and auth service.
type Handler struct {
	store *store.Store
	auth  *auth.Service
}

// New creates a handler set over the store and auth service.
func New(s *store.Store, a *auth.Service) *Handler {
	return &Handler{store: s, auth: a}
}

// Register mounts all routes on the engine. Every route under /api except
// login runs behind the bearer middleware; write routes add a role gate.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/auth/login", h.Login)

	protected := api.Group("", auth.Middleware(h.auth))

	protected.GET("/dashboard/stats", h.DashboardStats)
	protected.GET("/dashboard/activity", h.RecentActivity)

	protected.GET("/students", h.ListStudents)
	protected.GET("/students/:id", h.GetStudent)
	protected.POST("/students", auth.RequireRoles(model.RoleAdmin, model.RoleTeacher), h.CreateStudent)
	protected.PUT("/students/:id", auth.RequireRoles(model.RoleAdmin, model.RoleTeacher), h.UpdateStudent)
	protected.DELETE("/students/:id", auth.RequireRoles(model.RoleAdmin), h.DeleteStudent)

	protected.GET("/teachers", h.ListTeachers)
	protected.GET("/teachers/:id", h.GetTeacher)
	protected.POST("/teachers", auth.RequireRoles(model.RoleAdmin), h.CreateTeacher)
	protected.PUT("/teachers/:id", auth.RequireRoles(model.RoleAdmin), h.UpdateTeacher)
	protected.DELETE("/teachers/:id", auth.RequireRoles(model.RoleAdmin), h.DeleteTeacher)

	protected.GET("/classes", h.ListClasses)
	protected.GET("/classes/:id", h.GetClass)
	protected.POST("/classes", auth.RequireRoles(model.RoleAdmin, model.RoleTeacher), h.CreateClass)
	protected.PUT("/classes/:id", auth.RequireRoles(model.RoleAdmin, model.RoleTeacher), h.UpdateClass)
	protected.DELETE("/classes/:id", auth.RequireRoles(model.RoleAdmin), h.DeleteClass)
}

// ---------- Auth ----------

// Login verifies credentials and returns a bearer token with the user.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// ---------- Dashboard ----------

// DashboardStats returns the dashboard snapshot for the caller's role.
func (h *Handler) DashboardStats(c *gin.Context) {
	user, _ := auth.UserFrom(c)
	c.JSON(http.StatusOK, h.store.Stats(user.Role))
}

// RecentActivity returns the newest activity feed entries, default 5.
func (h *Handler) RecentActivity(c *gin.Context) {
	limit := 5
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	c.JSON(http.StatusOK, h.store.RecentActivities(limit))
}

// ---------- Students ----------

func (h *Handler) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListStudents(c.Query("query")))
}

func (h *Handler) GetStudent(c *gin.Context) {
	st, err := h.store.GetStudent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) CreateStudent(c *gin.Context) {
	var req model.StudentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.CreateStudent(req))
}

func (h *Handler) UpdateStudent(c *gin.Context) {
	var req model.StudentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, _ := auth.UserFrom(c)
	st, err := h.store.UpdateStudent(user, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) DeleteStudent(c *gin.Context) {
	user, _ := auth.UserFrom(c)
	if !h.store.DeleteStudent(user, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---------- Teachers ----------

func (h *Handler) ListTeachers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTeachers(c.Query("query")))
}

func (h *Handler) GetTeacher(c *gin.Context) {
	t, err := h.store.GetTeacher(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) CreateTeacher(c *gin.Context) {
	var req model.TeacherCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, _ := auth.UserFrom(c)
	c.JSON(http.StatusOK, h.store.CreateTeacher(user, req))
}

func (h *Handler) UpdateTeacher(c *gin.Context) {
	var req model.TeacherUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, _ := auth.UserFrom(c)
	t, err := h.store.UpdateTeacher(user, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTeacher(c *gin.Context) {
	user, _ := auth.UserFrom(c)
	if !h.store.DeleteTeacher(user, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---------- Classes ----------

func (h *Handler) ListClasses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClasses(c.Query("query")))
}

func (h *Handler) GetClass(c *gin.Context) {
	cl, err := h.store.GetClass(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req model.ClassCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.CreateClass(req))
}

func (h *Handler) UpdateClass(c *gin.Context) {
	var req model.ClassUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cl, err := h.store.UpdateClass(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *Handler) DeleteClass(c *gin.Context) {
	if !h.store.DeleteClass(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
