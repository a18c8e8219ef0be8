package workforce

import "strings"

// Employee is the canonical employee record built from the vendor roster
// plus the per-employee detail lookup. AccountID is the vendor-assigned
// key; every other field is optional in the vendor payload.
type Employee struct {
	AccountID            string
	Username             *string
	EmployeeID           *string
	FirstName            *string
	LastName             *string
	FullName             *string
	NationalInsurance    *string
	PrimaryEmail         *string
	PreferredPhone       *string
	AddressLine1         *string
	AddressLine2         *string
	Country              *string
	City                 *string
	Zip                  *string
	AccountStatus        *string
	TimeZone             *string
	FirstScreen          *string
	PayPeriodProfileName *string
}

func (e Employee) Validate() error {
	if strings.TrimSpace(e.AccountID) == "" {
		return ErrMissingAccountID
	}
	return nil
}
