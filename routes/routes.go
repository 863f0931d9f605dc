package routes

import (
	"staffing-crm-api/config"
	"staffing-crm-api/controllers"
	"staffing-crm-api/middleware"
	"staffing-crm-api/models"
	"staffing-crm-api/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// Composition root: the pipeline store and its handlers are built once
	// and injected, not looked up globally.
	submissions := controllers.NewSubmissionHandler(services.NewPipelineService(config.DB))
	dashboard := controllers.NewDashboardHandler(services.NewPipelineService(config.DB))
	campaigns := controllers.NewCampaignHandler(services.NewCampaignService(config.DB))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/forgot-password", controllers.ForgotPassword)
			public.POST("/reset-password", controllers.ResetPassword)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Staffing CRM API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Consultants
			consultants := protected.Group("/consultants")
			{
				consultants.GET("", controllers.GetConsultants)
				consultants.GET("/:id", controllers.GetConsultant)
				consultants.POST("", controllers.CreateConsultant)
				consultants.PUT("/:id", controllers.UpdateConsultant)
				consultants.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteConsultant)
			}

			// Job requirements
			jobs := protected.Group("/jobs")
			{
				jobs.GET("", controllers.GetJobs)
				jobs.GET("/:id", controllers.GetJob)
				jobs.POST("", controllers.CreateJob)
				jobs.PUT("/:id", controllers.UpdateJob)
				jobs.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteJob)
			}

			// Vendors
			vendors := protected.Group("/vendors")
			{
				vendors.GET("", controllers.GetVendors)
				vendors.GET("/:id", controllers.GetVendor)
				vendors.POST("", controllers.CreateVendor)
				vendors.PUT("/:id", controllers.UpdateVendor)
				vendors.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteVendor)
			}

			// Submission pipeline
			subs := protected.Group("/submissions")
			{
				subs.GET("", submissions.GetSubmissions)
				subs.GET("/queue", submissions.GetQueue)
				subs.GET("/:id", submissions.GetSubmission)
				subs.GET("/:id/history", submissions.GetHistory)
				subs.POST("", submissions.CreateSubmission)
				subs.PATCH("/:id/status", submissions.UpdateStatus)
				subs.PATCH("/:id/rate", submissions.UpdateRate)
			}

			// Dashboard (analytics access required)
			dash := protected.Group("/dashboard")
			dash.Use(middleware.RequireAnalyticsAccess())
			{
				dash.GET("/stats", dashboard.GetDashboardStats)
				dash.GET("/pipeline", dashboard.GetPipelineSummary)
			}

			// Email campaigns
			camps := protected.Group("/campaigns")
			{
				camps.GET("", campaigns.GetCampaigns)
				camps.GET("/:id", campaigns.GetCampaign)
				camps.POST("", campaigns.CreateCampaign)
				camps.POST("/:id/send", campaigns.SendCampaign)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Platform administration
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", controllers.AdminGetUsers)
				admin.POST("/users", controllers.AdminCreateUser)
				admin.PUT("/users/:id", controllers.AdminUpdateUser)
				admin.DELETE("/users/:id", controllers.AdminDeleteUser)
				admin.GET("/roles", controllers.AdminGetRoles)
			}
		}
	}
}
