package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"greenvisa-api/config"
	"greenvisa-api/mailer"
	"greenvisa-api/models"
	"greenvisa-api/routes"
	"greenvisa-api/workflow"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ---------------------------------------------------------------------------
// Fake Sender
// ---------------------------------------------------------------------------

type fakeSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error // returned for every send when set
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

// setupRouter wires the full route table over a fresh in-memory database.
func setupRouter(t *testing.T, sender mailer.Sender) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	// a fresh pool connection would see a fresh :memory: database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&models.Contact{},
		&models.Consultation{},
		&models.User{},
		&models.NewsletterSubscription{},
	)
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r, workflow.New(db, sender))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doAuthed(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := config.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return n
}
