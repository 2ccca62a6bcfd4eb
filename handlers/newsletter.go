package handlers

import (
	"net/http"

	"greenvisa-api/config"
	"greenvisa-api/mailer"
	"greenvisa-api/models"
	"greenvisa-api/workflow"

	"github.com/gin-gonic/gin"
)

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe adds an address to the newsletter list and confirms by email.
func Subscribe(wf *workflow.Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required."})
			return
		}

		var existing models.NewsletterSubscription
		if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This email is already subscribed."})
			return
		}

		sub := models.NewsletterSubscription{Email: req.Email}
		out, err := wf.Submit(c.Request.Context(), &sub, func() []mailer.Message {
			return []mailer.Message{mailer.NewsletterConfirmation(&sub)}
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe. Please try again later."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Subscribed successfully!",
			"email_sent": out.EmailSent,
		})
	}
}
