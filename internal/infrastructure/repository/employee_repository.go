package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JHCss26/ukg-internal/internal/domain/workforce"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/db/models"
)

// employeeColumnCount mirrors models.Employee; keep in sync when columns
// change.
const employeeColumnCount = 19

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// UpsertBatch writes employees keyed on account_id in chunks sized to the
// parameter budget. Chunks are applied one at a time; a failure stops the
// remaining chunks but already-applied ones stay (safe under upsert —
// re-running converges to the latest vendor state).
func (r *EmployeeRepository) UpsertBatch(ctx context.Context, employees []workforce.Employee) (int64, error) {
	if len(employees) == 0 {
		return 0, nil
	}

	rows := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		rows = append(rows, toEmployeeModel(employee))
	}

	var upserted int64
	for _, batch := range splitBatches(rows, SafeBatchSize(employeeColumnCount)) {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			UpdateAll: true,
		}).Create(&batch).Error
		if err != nil {
			return upserted, fmt.Errorf("upsert employees batch: %w", err)
		}
		upserted += int64(len(batch))
	}
	return upserted, nil
}

func toEmployeeModel(e workforce.Employee) models.Employee {
	return models.Employee{
		AccountID:            e.AccountID,
		Username:             e.Username,
		EmployeeID:           e.EmployeeID,
		FirstName:            e.FirstName,
		LastName:             e.LastName,
		FullName:             e.FullName,
		NationalInsurance:    e.NationalInsurance,
		PrimaryEmail:         e.PrimaryEmail,
		PreferredPhone:       e.PreferredPhone,
		AddressLine1:         e.AddressLine1,
		AddressLine2:         e.AddressLine2,
		Country:              e.Country,
		City:                 e.City,
		Zip:                  e.Zip,
		AccountStatus:        e.AccountStatus,
		TimeZone:             e.TimeZone,
		FirstScreen:          e.FirstScreen,
		PayPeriodProfileName: e.PayPeriodProfileName,
	}
}
