package handlers

import (
	"net/http"

	"greenvisa-api/config"
	"greenvisa-api/mailer"
	"greenvisa-api/models"
	"greenvisa-api/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmitConsultationRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,phone"`
	ContactMethod string `json:"contact_method" binding:"omitempty,oneof=call meet"`
	AcceptedTerms bool   `json:"accepted_terms" binding:"required"`
}

type UpdateConsultationRequest struct {
	Status *models.ConsultationStatus `json:"status"`
	Notes  *string                    `json:"notes"`
}

// SubmitConsultation handles the consultation request form. acceptedTerms
// must be true (binding:required rejects the zero value) and the phone rule
// is the registered custom validator.
func SubmitConsultation(wf *workflow.Submitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitConsultationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required and terms must be accepted."})
			return
		}

		method := models.ContactMethod(req.ContactMethod)
		if req.ContactMethod == "" {
			method = models.MethodCall
		}

		consultation := models.Consultation{
			Reference:     uuid.NewString(),
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			ContactMethod: method,
			AcceptedTerms: req.AcceptedTerms,
			Status:        models.StatusPending,
		}

		out, err := wf.Submit(c.Request.Context(), &consultation, func() []mailer.Message {
			return []mailer.Message{
				mailer.ConsultationConfirmation(&consultation),
				mailer.ConsultationAdminAlert(&consultation),
			}
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consultation data."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":         "Consultation request submitted successfully! Check your email for confirmation.",
			"consultation_id": consultation.ID,
			"reference":       consultation.Reference,
			"email_sent":      out.EmailSent,
		})
	}
}

// ListConsultations returns every consultation request, newest first
func ListConsultations(c *gin.Context) {
	var consultations []models.Consultation
	if err := config.DB.Order("created_at desc").Find(&consultations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultations."})
		return
	}
	c.JSON(http.StatusOK, consultations)
}

// UpdateConsultation applies a partial merge of status and notes.
// Statuses are free-form settable — any value may follow any other.
func UpdateConsultation(c *gin.Context) {
	id := c.Param("id")

	var req UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value."})
			return
		}
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	var consultation models.Consultation
	if err := config.DB.First(&consultation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found."})
		return
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&consultation).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update consultation."})
			return
		}
		config.DB.First(&consultation, consultation.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Consultation updated successfully.",
		"consultation": consultation,
	})
}

// DeleteConsultation removes a consultation request by id
func DeleteConsultation(c *gin.Context) {
	id := c.Param("id")
	var consultation models.Consultation
	if err := config.DB.First(&consultation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found."})
		return
	}
	if err := config.DB.Delete(&consultation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consultation."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consultation deleted successfully."})
}
