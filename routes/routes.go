package routes

import (
	"net/http"
	"time"

	"mentorhub/handlers"
	"mentorhub/middleware"
	"mentorhub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())

	registerAuthRoutes(api, hb)
	registerMentorRoutes(api, hb)
	registerStudentRoutes(api, hb)
	registerSpecialtyRoutes(api, hb)
	registerUserRoutes(api, hb)
	registerAdminRoutes(api, hb)
}

func registerAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	auth.POST("/register/student", hb.Auth.RegisterStudent)
	auth.POST("/register/mentor", hb.Auth.RegisterMentor)
	auth.POST("/login", hb.Auth.Login)
	auth.POST("/logout", hb.Auth.Logout)
	auth.GET("/me", middleware.AuthMiddleware(hb.Users), hb.Auth.Me)
}

func registerMentorRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	mentors := api.Group("/mentors")

	mentors.GET("", hb.Mentor.List)
	mentors.GET("/featured", hb.Mentor.Featured)
	mentors.GET("/:id", hb.Mentor.Detail)
	mentors.GET("/:id/availability", hb.Availability.Get)
	mentors.GET("/:id/availability/preview", hb.Availability.Preview)
	mentors.GET("/:id/reviews", hb.Review.ListByMentor)

	authed := mentors.Group("")
	authed.Use(middleware.AuthMiddleware(hb.Users), middleware.RequireRoles(models.RoleMentor))
	authed.GET("/me", hb.Mentor.OwnProfile)
	authed.PUT("/me", hb.Mentor.UpdateOwnProfile)
	// The snapshot replace answers to both verbs: clients POST, and PUT fits
	// the idempotent replace-all semantics.
	authed.POST("/:id/availability", hb.Availability.Set)
	authed.PUT("/:id/availability", hb.Availability.Set)
}

func registerStudentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	students := api.Group("/students")
	students.GET("/:id", hb.Student.PublicProfile)

	authed := students.Group("")
	authed.Use(middleware.AuthMiddleware(hb.Users), middleware.RequireRoles(models.RoleStudent))
	authed.GET("/me", hb.Student.Profile)
	authed.PUT("/me", hb.Student.UpdateProfile)
}

func registerSpecialtyRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	specialties := api.Group("/specialties")
	specialties.GET("", hb.Specialty.List)
	specialties.GET("/categories", hb.Specialty.Categories)
	specialties.GET("/:id", hb.Specialty.Get)
}

func registerUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(hb.Users))
	users.POST("/me/avatar", hb.Upload.UploadAvatar)
}

func registerAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(hb.Users), middleware.RequireRoles(models.RoleAdmin))

	admin.GET("/stats", hb.Admin.Stats)
	admin.GET("/users", hb.Admin.Users)
	admin.PATCH("/users/:id/active", hb.Admin.SetUserActive)
	admin.DELETE("/users/:id", hb.Admin.DeleteUser)
	admin.GET("/mentors/pending", hb.Admin.PendingMentors)
	admin.PATCH("/mentors/:id/approval", hb.Admin.SetMentorApproval)

	admin.GET("/specialties", hb.Specialty.AdminList)
	admin.POST("/specialties", hb.Specialty.Create)
	admin.PATCH("/specialties/:id", hb.Specialty.Update)
	admin.DELETE("/specialties/:id", hb.Specialty.Delete)
}
