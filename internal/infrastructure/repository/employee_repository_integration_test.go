package repository_test

import (
	"context"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JHCss26/ukg-internal/internal/domain/workforce"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/repository"
)

const employeesSchemaSQL = `
    CREATE TABLE IF NOT EXISTS employees (
      account_id VARCHAR(50) PRIMARY KEY,
      username VARCHAR(200),
      employee_id VARCHAR(100),
      first_name VARCHAR(200),
      last_name VARCHAR(200),
      full_name VARCHAR(400),
      national_insurance VARCHAR(50),
      primary_email VARCHAR(320),
      preferred_phone VARCHAR(50),
      address_line_1 VARCHAR(250),
      address_line_2 VARCHAR(250),
      country VARCHAR(50),
      city VARCHAR(150),
      zip VARCHAR(20),
      account_status VARCHAR(50),
      time_zone VARCHAR(100),
      first_screen VARCHAR(200),
      pay_period_profile_name VARCHAR(200),
      updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );
    `

func strPtr(s string) *string { return &s }

func TestEmployeeRepositoryUpsertBatchIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}

	if err := db.Exec(employeesSchemaSQL).Error; err != nil {
		t.Fatalf("failed schema setup: %v", err)
	}
	accountIDs := []string{"it-1001", "it-1002"}
	if err := db.Exec("DELETE FROM employees WHERE account_id IN ?", accountIDs).Error; err != nil {
		t.Fatalf("cleanup employees failed: %v", err)
	}

	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	first := []workforce.Employee{
		{
			AccountID: "it-1001",
			FirstName: strPtr("Ada"),
			LastName:  strPtr("Lovelace"),
		},
		{
			AccountID:     "it-1002",
			FirstName:     strPtr("Grace"),
			AccountStatus: strPtr("active"),
		},
	}

	upserted, err := repo.UpsertBatch(ctx, first)
	if err != nil {
		t.Fatalf("initial upsert failed: %v", err)
	}
	if upserted != 2 {
		t.Fatalf("expected 2 upserted rows, got %d", upserted)
	}

	// Same keys again with changed fields must update in place, not error.
	second := []workforce.Employee{
		{
			AccountID:            "it-1001",
			FirstName:            strPtr("Ada"),
			LastName:             strPtr("King"),
			PayPeriodProfileName: strPtr("Weekly"),
		},
	}
	upserted, err = repo.UpsertBatch(ctx, second)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if upserted != 1 {
		t.Fatalf("expected 1 upserted row, got %d", upserted)
	}

	var lastName, profile *string
	row := db.Raw("SELECT last_name, pay_period_profile_name FROM employees WHERE account_id = ?", "it-1001").Row()
	if err := row.Scan(&lastName, &profile); err != nil {
		t.Fatalf("readback failed: %v", err)
	}
	if lastName == nil || *lastName != "King" {
		t.Fatalf("expected last_name King, got %v", lastName)
	}
	if profile == nil || *profile != "Weekly" {
		t.Fatalf("expected pay_period_profile_name Weekly, got %v", profile)
	}

	var total int64
	if err := db.Raw("SELECT COUNT(*) FROM employees WHERE account_id IN ?", accountIDs).Scan(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 rows after upserts, got %d", total)
	}
}

func TestEmployeeRepositoryUpsertBatchEmptyIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}

	repo := repository.NewEmployeeRepository(db)
	upserted, err := repo.UpsertBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty upsert failed: %v", err)
	}
	if upserted != 0 {
		t.Fatalf("expected 0 upserted rows, got %d", upserted)
	}
}
