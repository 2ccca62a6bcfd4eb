package handlers

import (
	"net/http"

	"greenvisa-api/config"
	"greenvisa-api/mailer"
	"greenvisa-api/models"
	"greenvisa-api/workflow"

	"github.com/gin-gonic/gin"
)

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact handles the contact form: persist the message, then send a
// confirmation to the sender and an alert to the business inbox.
func SubmitContact(wf *workflow.Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}

		contact := models.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}

		out, err := wf.Submit(c.Request.Context(), &contact, func() []mailer.Message {
			return []mailer.Message{
				mailer.ContactConfirmation(&contact),
				mailer.ContactAdminAlert(&contact),
			}
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again later."})
			return
		}

		msg := "Your message has been sent successfully! Please check your email for confirmation."
		if !out.EmailSent {
			msg = "Your message has been sent successfully! However, we couldn't send a confirmation email. We'll still get back to you soon."
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    msg,
			"id":         contact.ID,
			"email_sent": out.EmailSent,
		})
	}
}

// ListContacts returns every contact message, newest first
func ListContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := config.DB.Order("created_at desc").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contact messages."})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// DeleteContact removes a contact message by id
func DeleteContact(c *gin.Context) {
	id := c.Param("id")
	var contact models.Contact
	if err := config.DB.First(&contact, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found."})
		return
	}
	if err := config.DB.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully!"})
}
