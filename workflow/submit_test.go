package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"greenvisa-api/mailer"
	"greenvisa-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ---------------------------------------------------------------------------
// Fake Sender
// ---------------------------------------------------------------------------

type fakeSender struct {
	mu       sync.Mutex
	sent     []mailer.Message
	failFor  map[string]error // recipient -> error to return
	blockCtx bool             // block until ctx is done
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	if f.blockCtx {
		<-ctx.Done()
		return ctx.Err()
	}
	if err, ok := f.failFor[msg.To]; ok {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	// a fresh connection would see a fresh :memory: database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := db.AutoMigrate(&models.Contact{}, &models.NewsletterSubscription{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestSubmit_PersistsThenNotifies(t *testing.T) {
	db := testDB(t)
	sender := &fakeSender{}
	wf := New(db, sender)

	contact := models.Contact{Name: "Jane Doe", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	var idAtNotify uint
	out, err := wf.Submit(context.Background(), &contact, func() []mailer.Message {
		// runs after the insert, so server-assigned fields are visible
		idAtNotify = contact.ID
		return []mailer.Message{
			{To: contact.Email, Subject: "Confirmation"},
			{To: "admin@example.com", Subject: "Alert"},
		}
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !out.EmailSent {
		t.Error("expected EmailSent=true when all sends succeed")
	}
	if idAtNotify == 0 {
		t.Error("notifications ran before the record was persisted")
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 messages sent, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "jane@example.com" {
		t.Errorf("expected submitter confirmation first, got %q", sender.sent[0].To)
	}
}

func TestSubmit_PersistenceFailureSkipsNotification(t *testing.T) {
	db := testDB(t)
	sender := &fakeSender{}
	wf := New(db, sender)

	first := models.NewsletterSubscription{Email: "dup@example.com"}
	if _, err := wf.Submit(context.Background(), &first, func() []mailer.Message { return nil }); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	sender.sent = nil

	// unique index on email makes the second insert fail
	dup := models.NewsletterSubscription{Email: "dup@example.com"}
	called := false
	_, err := wf.Submit(context.Background(), &dup, func() []mailer.Message {
		called = true
		return []mailer.Message{{To: "dup@example.com"}}
	})
	if err == nil {
		t.Fatal("expected persistence error on duplicate email")
	}
	if called {
		t.Error("notifications must not run when persistence fails")
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no messages sent, got %d", len(sender.sent))
	}
}

func TestSubmit_ConfirmationFailureStillSucceeds(t *testing.T) {
	db := testDB(t)
	sender := &fakeSender{failFor: map[string]error{"jane@example.com": errors.New("smtp auth failed")}}
	wf := New(db, sender)

	contact := models.Contact{Name: "Jane Doe", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	out, err := wf.Submit(context.Background(), &contact, func() []mailer.Message {
		return []mailer.Message{
			{To: contact.Email},
			{To: "admin@example.com"},
		}
	})
	if err != nil {
		t.Fatalf("Submit must not fail on a notification error, got: %v", err)
	}
	if out.EmailSent {
		t.Error("expected EmailSent=false when the confirmation send fails")
	}

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	if count != 1 {
		t.Errorf("record must be persisted regardless of email outcome, count=%d", count)
	}
	// admin copy is independent of the confirmation failure
	if len(sender.sent) != 1 || sender.sent[0].To != "admin@example.com" {
		t.Errorf("expected the admin copy to still be attempted, sent=%v", sender.sent)
	}
}

func TestSubmit_AdminCopyFailureDoesNotAffectFlag(t *testing.T) {
	db := testDB(t)
	sender := &fakeSender{failFor: map[string]error{"admin@example.com": errors.New("connection refused")}}
	wf := New(db, sender)

	contact := models.Contact{Name: "Jane Doe", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	out, err := wf.Submit(context.Background(), &contact, func() []mailer.Message {
		return []mailer.Message{
			{To: contact.Email},
			{To: "admin@example.com"},
		}
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !out.EmailSent {
		t.Error("admin copy failure must not downgrade EmailSent")
	}
}

func TestSubmit_SlowTransportTimesOut(t *testing.T) {
	db := testDB(t)
	sender := &fakeSender{blockCtx: true}
	wf := New(db, sender)
	wf.SendTimeout = 20 * time.Millisecond

	contact := models.Contact{Name: "Jane Doe", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	start := time.Now()
	out, err := wf.Submit(context.Background(), &contact, func() []mailer.Message {
		return []mailer.Message{{To: contact.Email}}
	})
	if err != nil {
		t.Fatalf("timeout must be swallowed like any notification failure, got: %v", err)
	}
	if out.EmailSent {
		t.Error("expected EmailSent=false on transport timeout")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("send was not bounded by the timeout, took %v", elapsed)
	}
}
