package routes

import (
	"greenvisa-api/handlers"
	"greenvisa-api/middleware"
	"greenvisa-api/workflow"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, wf *workflow.Submitter) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Contact form
		public.POST("/contact/submit", handlers.SubmitContact(wf))
		public.GET("/contact", handlers.ListContacts)
		public.DELETE("/contact/:id", handlers.DeleteContact)

		// Consultation requests
		public.POST("/consultations/submit", handlers.SubmitConsultation(wf))
		public.GET("/consultations", handlers.ListConsultations)
		public.PUT("/consultations/:id", handlers.UpdateConsultation)
		public.DELETE("/consultations/:id", handlers.DeleteConsultation)

		// Accounts
		public.POST("/register", handlers.Register(wf))
		public.POST("/login", handlers.Login)

		// Newsletter
		public.POST("/newsletter/subscribe", handlers.Subscribe(wf))
	}

	// ── Dashboard routes (token required) ──────────────────────────
	dashboard := r.Group("/api/dashboard")
	dashboard.Use(middleware.AuthRequired())
	{
		dashboard.GET("", handlers.GetProfile)
		dashboard.GET("/stats", handlers.GetStats)
	}
}
