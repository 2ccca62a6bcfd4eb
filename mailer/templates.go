package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"time"

	"greenvisa-api/config"
	"greenvisa-api/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func render(name string, data any) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("mailer: rendering %s failed: %v", name, err)
		return ""
	}
	return buf.String()
}

// ContactConfirmation thanks the sender and echoes their message back.
func ContactConfirmation(c *models.Contact) Message {
	return Message{
		To:      c.Email,
		Subject: "Thank You for Contacting GreenVisa - We've Received Your Message",
		HTML: render("contact_confirmation.html", map[string]any{
			"Name":    c.Name,
			"Subject": c.Subject,
			"Message": c.Message,
		}),
		Text: fmt.Sprintf(
			"Hello %s,\n\nThank you for contacting GreenVisa. We have received your message (%q) and will get back to you within 24-48 hours.\n\nThe GreenVisa Team",
			c.Name, c.Subject),
	}
}

// ContactAdminAlert notifies the business inbox of a new contact message.
func ContactAdminAlert(c *models.Contact) Message {
	return Message{
		To:      config.AdminEmail(),
		Subject: "New Contact Form Submission: " + c.Subject,
		HTML: render("contact_admin.html", map[string]any{
			"Name":        c.Name,
			"Email":       c.Email,
			"Subject":     c.Subject,
			"Message":     c.Message,
			"SubmittedAt": c.CreatedAt.Format(time.RFC1123),
		}),
		Text: fmt.Sprintf("New contact form submission from %s <%s>: %s\n\n%s",
			c.Name, c.Email, c.Subject, c.Message),
	}
}

// ConsultationConfirmation confirms a consultation request, including the
// server-assigned reference and creation time.
func ConsultationConfirmation(con *models.Consultation) Message {
	method := "Phone Call"
	if con.ContactMethod == models.MethodMeet {
		method = "Video Meeting"
	}
	return Message{
		To:      con.Email,
		Subject: "Green Card Visa Consultation Request Confirmed",
		HTML: render("consultation_confirmation.html", map[string]any{
			"Name":      con.Name,
			"Email":     con.Email,
			"Phone":     con.Phone,
			"Method":    method,
			"Reference": con.Reference,
			"CreatedAt": con.CreatedAt.Format("January 2, 2006 3:04 PM"),
		}),
		Text: fmt.Sprintf(
			"Hello %s,\n\nWe have received your consultation request (reference %s). Our team will contact you via %s within 24-48 hours.\n\nThe GreenVisa Team",
			con.Name, con.Reference, method),
	}
}

// ConsultationAdminAlert notifies the business inbox of a new request.
func ConsultationAdminAlert(con *models.Consultation) Message {
	return Message{
		To:      config.AdminEmail(),
		Subject: "New Consultation Request Received",
		HTML: render("consultation_admin.html", map[string]any{
			"Name":      con.Name,
			"Email":     con.Email,
			"Phone":     con.Phone,
			"Method":    string(con.ContactMethod),
			"Reference": con.Reference,
			"CreatedAt": con.CreatedAt.Format(time.RFC1123),
		}),
		Text: fmt.Sprintf("New consultation request %s from %s <%s>, phone %s, prefers %s",
			con.Reference, con.Name, con.Email, con.Phone, con.ContactMethod),
	}
}

// WelcomeEmail greets a newly registered user.
func WelcomeEmail(u *models.User) Message {
	return Message{
		To:      u.Email,
		Subject: "Welcome to GreenVisa - Your Journey Begins Now!",
		HTML:    render("welcome.html", map[string]any{"Name": u.Name}),
		Text: fmt.Sprintf(
			"Welcome to GreenVisa, %s!\n\nThank you for joining our community. Manage your visa applications from your dashboard at any time.\n\nThe GreenVisa Team",
			u.Name),
	}
}

// NewsletterConfirmation acknowledges a newsletter signup.
func NewsletterConfirmation(sub *models.NewsletterSubscription) Message {
	return Message{
		To:      sub.Email,
		Subject: "You're Subscribed to the GreenVisa Newsletter",
		HTML:    render("newsletter_confirmation.html", map[string]any{"Email": sub.Email}),
		Text:    "You are now subscribed to the GreenVisa newsletter. Expect visa news and updates in your inbox.",
	}
}
