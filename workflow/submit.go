// Package workflow implements the intake pipeline shared by the contact,
// consultation, registration, and newsletter endpoints: persist the record,
// then attempt the follow-up emails without letting a delivery failure
// undo an already-successful submission.
package workflow

import (
	"context"
	"log"
	"time"

	"greenvisa-api/mailer"

	"gorm.io/gorm"
)

const defaultSendTimeout = 10 * time.Second

// Outcome reports what happened after validation passed.
type Outcome struct {
	// EmailSent is true when the submitter's confirmation email was
	// delivered to the transport. Admin copies never affect it.
	EmailSent bool
}

// Submitter runs the intake pipeline. Construct one in main with the real
// SMTP sender; tests substitute a fake.
type Submitter struct {
	DB          *gorm.DB
	Mail        mailer.Sender
	SendTimeout time.Duration
}

func New(db *gorm.DB, mail mailer.Sender) *Submitter {
	return &Submitter{DB: db, Mail: mail, SendTimeout: defaultSendTimeout}
}

// Submit inserts record, then sends the messages produced by notifications.
// notifications runs after the insert so message bodies can include
// server-assigned fields (id, reference, creation time).
//
// The first message is the submitter's confirmation; any further messages
// are admin copies. Every send failure is logged and swallowed — a persisted
// record is a successful submission regardless of email outcome.
func (s *Submitter) Submit(ctx context.Context, record any, notifications func() []mailer.Message) (Outcome, error) {
	if err := s.DB.WithContext(ctx).Create(record).Error; err != nil {
		return Outcome{}, err
	}

	out := Outcome{EmailSent: true}
	for i, msg := range notifications() {
		if err := s.send(ctx, msg); err != nil {
			log.Printf("workflow: email to %s failed: %v", msg.To, err)
			if i == 0 {
				out.EmailSent = false
			}
		}
	}
	return out, nil
}

func (s *Submitter) send(ctx context.Context, msg mailer.Message) error {
	timeout := s.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Mail.Send(sctx, msg)
}
