package workforce

import "context"

type EmployeeStore interface {
	UpsertBatch(ctx context.Context, employees []Employee) (int64, error)
}

type ReportStore interface {
	CountForRun(ctx context.Context, settingID int, shiftDate string) (int64, error)
	InsertRows(ctx context.Context, rows []ReportRow) (int64, error)
}
