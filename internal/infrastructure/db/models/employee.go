package models

import "time"

type Employee struct {
	AccountID            string  `gorm:"column:account_id;primaryKey;size:50"`
	Username             *string `gorm:"size:200"`
	EmployeeID           *string `gorm:"column:employee_id;size:100"`
	FirstName            *string `gorm:"size:200"`
	LastName             *string `gorm:"size:200"`
	FullName             *string `gorm:"size:400"`
	NationalInsurance    *string `gorm:"size:50"`
	PrimaryEmail         *string `gorm:"size:320"`
	PreferredPhone       *string `gorm:"size:50"`
	AddressLine1         *string `gorm:"column:address_line_1;size:250"`
	AddressLine2         *string `gorm:"column:address_line_2;size:250"`
	Country              *string `gorm:"size:50"`
	City                 *string `gorm:"size:150"`
	Zip                  *string `gorm:"size:20"`
	AccountStatus        *string `gorm:"size:50"`
	TimeZone             *string `gorm:"size:100"`
	FirstScreen          *string `gorm:"size:200"`
	PayPeriodProfileName *string `gorm:"size:200"`
	UpdatedAt            time.Time
}

func (Employee) TableName() string {
	return "employees"
}
