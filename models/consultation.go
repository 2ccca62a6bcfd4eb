package models

import "time"

// ConsultationStatus represents where a consultation request is in its lifecycle.
// Admins may set any status at any time; there is no enforced ordering.
type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "pending"
	StatusContacted ConsultationStatus = "contacted"
	StatusScheduled ConsultationStatus = "scheduled"
	StatusCompleted ConsultationStatus = "completed"
	StatusCancelled ConsultationStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s ConsultationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ContactMethod is how the requester prefers to be reached.
type ContactMethod string

const (
	MethodCall ContactMethod = "call"
	MethodMeet ContactMethod = "meet"
)

func (m ContactMethod) Valid() bool {
	return m == MethodCall || m == MethodMeet
}

type Consultation struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	Reference     string             `json:"reference" gorm:"uniqueIndex;not null"`
	Name          string             `json:"name" gorm:"not null"`
	Email         string             `json:"email" gorm:"not null"`
	Phone         string             `json:"phone" gorm:"not null"`
	ContactMethod ContactMethod      `json:"contact_method" gorm:"not null;default:'call'"`
	AcceptedTerms bool               `json:"accepted_terms" gorm:"not null"`
	Status        ConsultationStatus `json:"status" gorm:"not null;default:'pending'"`
	Notes         string             `json:"notes" gorm:"type:text;default:''"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
