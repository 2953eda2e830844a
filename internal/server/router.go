package server

import (
	"html/template"
	"net/http"
	"time"

	"idcard-system/internal/config"
	"idcard-system/internal/handlers"
	"idcard-system/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	handlers.Setup(cfg)

	r := gin.Default()

	r.Static("/static", "./web/static")
	// photos are addressed only by their generated filenames
	r.Static("/uploads", cfg.UploadDir)

	r.SetFuncMap(template.FuncMap{
		"eq":       func(a, b interface{}) bool { return a == b },
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"date":     func(t time.Time) string { return t.Format("2006-01-02") },
		"longDate": func(t time.Time) string { return t.Format("Jan 2, 2006") },
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   cfg.SecureCookies,
	})
	r.Use(sessions.Sessions("idcard_session", store))

	r.Use(middleware.SessionWindow(time.Duration(cfg.SessionMaxAge)*time.Second, time.Now))
	r.Use(middleware.InjectPrincipal())

	// PUBLIC
	r.GET("/", handlers.IndexPage)
	r.POST("/contact", handlers.ProcessContact)

	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	r.GET("/admin/login", handlers.ShowAdminLogin)
	r.POST("/admin/login", handlers.AdminLogin)
	r.GET("/admin/logout", handlers.AdminLogout)

	// USER AREA
	user := r.Group("/")
	user.Use(middleware.RequireUser())
	user.GET("/dashboard", handlers.Dashboard)
	user.GET("/card", handlers.Card)

	// ADMIN PANEL
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("", handlers.AdminDashboard)
	admin.GET("/users", handlers.ListUsers)
	admin.GET("/users/:id", handlers.ShowUser)
	admin.GET("/users/:id/edit", handlers.ShowEditUser)
	admin.POST("/users/:id/edit", handlers.UpdateUser)
	admin.POST("/users/:id/delete", handlers.DeleteUser)
	admin.GET("/messages", handlers.ListMessages)
	admin.POST("/messages/:id/read", handlers.MarkMessageRead)
	admin.POST("/messages/:id/delete", handlers.DeleteMessage)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
