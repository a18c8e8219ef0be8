package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JHCss26/ukg-internal/internal/domain/workforce"
)

// reportColumns are the employees_reports columns written per row, in
// argument order.
var reportColumns = []string{
	"setting_id", "shift_date", "department", "employee_id", "first_name",
	"surname", "hourly_pay", "scheduled_time_hours", "annual_leave_days_days",
	"basic_hours", "basic_rate_total", "overtime1_hours", "overtime1_rate",
	"overtime1_total", "overtime2_hours", "overtime2_rate", "overtime2_total",
	"work_vs_scheduled_hours", "sick_hours", "unauthorised_leave_hours",
	"holiday_pay", "holiday_rate", "holiday_pay_total", "sub_total",
	"comments", "created_at",
}

type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) CountForRun(ctx context.Context, settingID int, shiftDate string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM employees_reports WHERE setting_id = $1 AND shift_date = $2",
		settingID, shiftDate,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count report rows: %w", err)
	}
	return count, nil
}

// InsertRows bulk-inserts report rows in chunks sized to the parameter
// budget. Each chunk is one multi-row INSERT, awaited before the next; no
// transaction spans the chunks.
func (r *ReportRepository) InsertRows(ctx context.Context, rows []workforce.ReportRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var inserted int64
	for _, batch := range splitBatches(rows, SafeBatchSize(len(reportColumns))) {
		sql, args := buildReportInsert(batch)
		tag, err := r.pool.Exec(ctx, sql, args...)
		if err != nil {
			return inserted, fmt.Errorf("insert report rows batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func buildReportInsert(batch []workforce.ReportRow) (string, []any) {
	now := time.Now().UTC()

	var b strings.Builder
	b.WriteString("INSERT INTO employees_reports (")
	b.WriteString(strings.Join(reportColumns, ", "))
	b.WriteString(") VALUES ")

	args := make([]any, 0, len(batch)*len(reportColumns))
	for i, row := range batch {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for j := range reportColumns {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", len(args)+j+1)
		}
		b.WriteString(")")

		args = append(args,
			row.SettingID, row.ShiftDate, row.Department, row.EmployeeID,
			row.FirstName, row.Surname, row.HourlyPay, row.ScheduledTimeHours,
			row.AnnualLeaveDaysDays, row.BasicHours, row.BasicRateTotal,
			row.Overtime1Hours, row.Overtime1Rate, row.Overtime1Total,
			row.Overtime2Hours, row.Overtime2Rate, row.Overtime2Total,
			row.WorkVsScheduledHours, row.SickHours, row.UnauthorisedLeaveHours,
			row.HolidayPay, row.HolidayRate, row.HolidayPayTotal, row.SubTotal,
			row.Comments, now,
		)
	}
	return b.String(), args
}
