package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	mongorepo "github.com/events-directory/internal/repository/mongo"
)

// TestDB - подключение к тестовой MongoDB
type TestDB struct {
	DB     *mongorepo.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к тестовой базе из TEST_MONGO_URI.
// Без переменной окружения тесты репозиториев пропускаются.
func SetupTestDB(t *testing.T) *TestDB {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI is not set, skipping MongoDB repository tests")
	}

	cfg := &config.MongoConfig{
		URI:            uri,
		DBName:         getEnv("TEST_MONGO_DB", "events_directory_test"),
		ConnectTimeout: 10 * time.Second,
	}

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := mongorepo.New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("Failed to connect to test MongoDB at %s: %v", uri, err)
	}

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

// Cleanup очищает все коллекции тестовой базы
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	collections := []string{
		"cities",
		"venue_types",
		"event_types",
		"venues",
		"events",
		"users",
	}

	for _, coll := range collections {
		if _, err := tdb.DB.Database().Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}

// Close закрывает подключение
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.Close(context.Background())
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
