package integration

import (
	"log"
	"os"
	"testing"

	"ai-chatroom-be/internal/model"
	"ai-chatroom-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// openTestDB connects to DB_CONNECTION_STRING and creates the chat tables, or skips.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
	return db
}

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
