package workforce

// ReportRow is one flattened data row of a vendor saved report. Fields are
// resolved by column label, so any of them may be absent from a given
// report layout. HourlyPay and HolidayRate keep the vendor's formatted
// currency text (symbol included); the hour/pay figures are parsed
// numerics.
type ReportRow struct {
	SettingID int    `json:"setting_id,omitempty"`
	ShiftDate string `json:"shift_date,omitempty"`

	Department *string `json:"department"`
	EmployeeID *string `json:"employee_id"`
	FirstName  *string `json:"first_name"`
	Surname    *string `json:"surname"`

	HourlyPay              *string  `json:"hourly_pay"`
	ScheduledTimeHours     *float64 `json:"scheduled_time_hours"`
	AnnualLeaveDaysDays    *float64 `json:"annual_leave_days_days"`
	BasicHours             *float64 `json:"basic_hours"`
	BasicRateTotal         *float64 `json:"basic_rate_total"`
	Overtime1Hours         *float64 `json:"overtime1_hours"`
	Overtime1Rate          *float64 `json:"overtime1_rate"`
	Overtime1Total         *float64 `json:"overtime1_total"`
	Overtime2Hours         *float64 `json:"overtime2_hours"`
	Overtime2Rate          *float64 `json:"overtime2_rate"`
	Overtime2Total         *float64 `json:"overtime2_total"`
	WorkVsScheduledHours   *float64 `json:"work_vs_scheduled_hours"`
	SickHours              *float64 `json:"sick_hours"`
	UnauthorisedLeaveHours *float64 `json:"unauthorised_leave_hours"`
	HolidayPay             *float64 `json:"holiday_pay"`
	HolidayRate            *string  `json:"holiday_rate"`
	HolidayPayTotal        *float64 `json:"holiday_pay_total"`
	SubTotal               *float64 `json:"sub_total"`
	Comments               *string  `json:"comments"`
}
