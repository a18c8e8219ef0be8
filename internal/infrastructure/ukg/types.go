package ukg

import "encoding/json"

// FlexString decodes a JSON string or number into a string. The vendor is
// inconsistent about identifier types; account ids in particular arrive
// both quoted and bare.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// RosterEntry is one employee summary record from the vendor roster.
type RosterEntry struct {
	AccountID         FlexString     `json:"account_id"`
	ExternalID        FlexString     `json:"external_id"`
	EmployeeID        FlexString     `json:"employee_id"`
	Username          *string        `json:"username"`
	FirstName         *string        `json:"first_name"`
	LastName          *string        `json:"last_name"`
	FullName          *string        `json:"full_name"`
	NationalInsurance *string        `json:"national_insurance"`
	PrimaryEmail      *string        `json:"primary_email"`
	PreferredPhone    *string        `json:"preferred_phone"`
	Address           *RosterAddress `json:"address"`
	AccountStatus     *string        `json:"account_status"`
	TimeZone          *string        `json:"time_zone"`
	FirstScreen       *string        `json:"first_screen"`
}

type RosterAddress struct {
	AddressLine1 *string `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2"`
	Country      *string `json:"country"`
	City         *string `json:"city"`
	Zip          *string `json:"zip"`
}

// EmployeeDetail is the per-employee detail payload; only the pay period
// profile is consumed.
type EmployeeDetail struct {
	PayPeriodProfile *PayPeriodProfile `json:"pay_period_profile"`
}

type PayPeriodProfile struct {
	Name *string `json:"name"`
}

// PayPeriodProfileName returns the profile name, or nil when the detail
// payload omits it.
func (d EmployeeDetail) PayPeriodProfileName() *string {
	if d.PayPeriodProfile == nil {
		return nil
	}
	return d.PayPeriodProfile.Name
}

// SavedReportRequest is the fixed-shape body for saved report fetches.
type SavedReportRequest struct {
	Company   ReportCompany    `json:"company"`
	Selectors []ReportSelector `json:"selectors"`
	Page      *ReportPage      `json:"page,omitempty"`
}

type ReportCompany struct {
	ShortName string `json:"short_name"`
}

type ReportSelector struct {
	Name       string            `json:"name"`
	Parameters map[string]string `json:"parameters"`
}

type ReportPage struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}
