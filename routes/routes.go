package routes

import (
	"net/http"
	"time"

	"atelier/handlers"
	"atelier/middleware"
	"atelier/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the admin credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/verify", hb.Auth.VerifyHandler)

		api.Use(middleware.AdminAuthMiddleware())
		api.POST("/change-password", hb.Auth.ChangePasswordHandler)
	}
}

// RegisterCalendarRoutes registers slot listing and booking.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/slots", hb.Calendar.ListSlotsHandler)
		api.POST("/book", hb.Calendar.BookHandler)
	}
}

// RegisterChatRoutes registers the visitor concierge endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.Chat.MessageHandler)
}

// RegisterContentRoutes registers the public content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/projects", hb.Content.ListProjectsHandler)
		api.GET("/projects/:slug", hb.Content.GetProjectHandler)
		api.GET("/testimonials", hb.Content.ListTestimonialsHandler)
	}
}

// RegisterMemberRoutes registers the members area.
func RegisterMemberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/members")
	{
		api.POST("/redeem", hb.Member.RedeemHandler)

		api.Use(middleware.MemberAuthMiddleware())
		api.GET("/resources", hb.Member.ResourcesHandler)
	}
}

// RegisterAdminRoutes registers everything behind the admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		// Content management.
		admin.GET("/content/projects", hb.Content.AdminListProjectsHandler)
		admin.POST("/content/projects", hb.Content.CreateProjectHandler)
		admin.PUT("/content/projects/:slug", hb.Content.UpdateProjectHandler)
		admin.DELETE("/content/projects/:slug", hb.Content.DeleteProjectHandler)
		admin.GET("/content/testimonials", hb.Content.AdminListTestimonialsHandler)
		admin.POST("/content/testimonials", hb.Content.CreateTestimonialHandler)
		admin.DELETE("/content/testimonials/:id", hb.Content.DeleteTestimonialHandler)

		// Media uploads.
		admin.POST("/media", hb.Storage.UploadMediaHandler)

		// Chat transcripts.
		admin.GET("/chats", hb.Chat.ListChatsHandler)
		admin.GET("/chats/:visitorID", hb.Chat.GetChatHandler)

		// Bookings and members.
		admin.GET("/bookings", hb.Calendar.ListBookingsHandler)
		admin.GET("/members", hb.Member.ListMembersHandler)
		admin.POST("/members", hb.Member.CreateMemberHandler)
		admin.DELETE("/members/:id", hb.Member.RevokeMemberHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterMemberRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
