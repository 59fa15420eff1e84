// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"icolleague/internal/auth"
	"icolleague/internal/db"
	"icolleague/internal/models"
)

// TestDB connects to TEST_DATABASE_URL, applies migrations and empties every
// table. The test is skipped when the variable is unset.
func TestDB(t *testing.T) *db.DB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanupTestData(ctx, database.Pool)
	t.Cleanup(func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	})

	return database
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM assistant_lookups")
	pool.Exec(ctx, "DELETE FROM employees")
	pool.Exec(ctx, "DELETE FROM users")
}

// CreateTestUser registers a local account with the given password.
func CreateTestUser(t *testing.T, database *db.DB, username, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{Username: username, PasswordHash: hash}
	if err := database.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestEmployee adds a directory entry with a generated email and phone.
func CreateTestEmployee(t *testing.T, database *db.DB, name, department string) *models.Employee {
	t.Helper()

	e := &models.Employee{
		Name:       name,
		Email:      fmt.Sprintf("%s@company.test", strings.ToLower(strings.ReplaceAll(name, " ", "."))),
		Department: department,
		Phone:      "+1-555-0000",
	}
	if err := database.CreateEmployee(context.Background(), e); err != nil {
		t.Fatalf("failed to create test employee: %v", err)
	}
	return e
}
