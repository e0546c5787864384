package routes

import (
	"accreditation-api/controllers"
	"accreditation-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		public := api.Group("")
		{
			// Authentication
			public.POST("/auth/register", controllers.Register)
			public.POST("/auth/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Accreditation Document API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/profile", controllers.GetProfile)
			protected.GET("/categories", controllers.GetCategories)

			// Documents
			documents := protected.Group("/documents")
			{
				documents.POST("", controllers.UploadDocument)
				documents.GET("", controllers.GetDocuments)
				documents.GET("/:id/download", controllers.DownloadDocument)

				// Only admins may review or remove documents
				documents.PATCH("/:id/status", middleware.RequireAdmin(), controllers.UpdateDocumentStatus)
				documents.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteDocument)
			}

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Activity log
			protected.GET("/activities", controllers.GetActivities)
		}
	}
}
