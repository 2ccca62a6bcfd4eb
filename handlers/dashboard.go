package handlers

import (
	"net/http"

	"greenvisa-api/config"
	"greenvisa-api/middleware"
	"greenvisa-api/models"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's name, email and role
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// GetStats returns record counts for the admin dashboard
func GetStats(c *gin.Context) {
	var contacts, newsletters, consultations int64

	if err := config.DB.Model(&models.Contact{}).Count(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if err := config.DB.Model(&models.NewsletterSubscription{}).Count(&newsletters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if err := config.DB.Model(&models.Consultation{}).Count(&consultations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts":      contacts,
		"newsletters":   newsletters,
		"consultations": consultations,
		"message":       "Dashboard statistics retrieved successfully",
	})
}
