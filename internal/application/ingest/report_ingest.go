package ingest

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/JHCss26/ukg-internal/internal/domain/workforce"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/ukg"
)

type reportClient interface {
	FetchSavedReport(ctx context.Context, settingID string, body ukg.SavedReportRequest) ([]byte, error)
}

type ReportRunResult struct {
	Inserted  int64  `json:"inserted"`
	Count     int64  `json:"count"`
	ShiftDate string `json:"shift_date"`
	Skipped   bool   `json:"skipped,omitempty"`
}

type ReportPreview struct {
	Count int                   `json:"count"`
	Rows  []workforce.ReportRow `json:"rows"`
}

// ReportIngest fetches a saved report, flattens it, and stores the rows.
//
// Idempotency policy: a run is skipped entirely when rows already exist
// for (settingId, shiftDate). Re-running a completed day is a no-op;
// repairing a partial day means deleting that day's rows first. Existing
// rows are never deleted here.
type ReportIngest struct {
	client  reportClient
	store   workforce.ReportStore
	company string
	logger  zerolog.Logger
	now     func() time.Time
}

func NewReportIngest(client reportClient, store workforce.ReportStore, company string, logger zerolog.Logger) *ReportIngest {
	return &ReportIngest{
		client:  client,
		store:   store,
		company: company,
		logger:  logger,
		now:     time.Now,
	}
}

// Preview fetches and flattens a report without writing anything.
func (r *ReportIngest) Preview(ctx context.Context, settingID string) (ReportPreview, error) {
	doc, err := r.client.FetchSavedReport(ctx, settingID, r.requestBody())
	if err != nil {
		return ReportPreview{}, fmt.Errorf("fetch report %s: %w", settingID, err)
	}

	rows, err := flattenReport(doc)
	if err != nil {
		return ReportPreview{}, err
	}
	return ReportPreview{Count: len(rows), Rows: rows}, nil
}

// RunAndStore fetches, flattens, and inserts the report rows for
// yesterday's shift date under the skip-if-exists policy.
func (r *ReportIngest) RunAndStore(ctx context.Context, settingID string) (ReportRunResult, error) {
	sid, err := strconv.Atoi(settingID)
	if err != nil {
		return ReportRunResult{}, fmt.Errorf("%w: %q", ErrInvalidSettingID, settingID)
	}
	shiftDate := r.now().AddDate(0, 0, -1).Format("2006-01-02")

	existing, err := r.store.CountForRun(ctx, sid, shiftDate)
	if err != nil {
		return ReportRunResult{}, fmt.Errorf("count existing report rows: %w", err)
	}
	if existing > 0 {
		r.logger.Info().Int("setting_id", sid).Str("shift_date", shiftDate).Int64("existing", existing).Msg("report rows already present, skipping")
		return ReportRunResult{Count: existing, ShiftDate: shiftDate, Skipped: true}, nil
	}

	doc, err := r.client.FetchSavedReport(ctx, settingID, r.requestBody())
	if err != nil {
		return ReportRunResult{}, fmt.Errorf("fetch report %s: %w", settingID, err)
	}

	rows, err := flattenReport(doc)
	if err != nil {
		return ReportRunResult{}, err
	}
	if len(rows) == 0 {
		r.logger.Warn().Int("setting_id", sid).Str("shift_date", shiftDate).Msg("vendor returned 0 report rows")
		return ReportRunResult{ShiftDate: shiftDate}, nil
	}

	for i := range rows {
		rows[i].SettingID = sid
		rows[i].ShiftDate = shiftDate
	}

	inserted, err := r.store.InsertRows(ctx, rows)
	if err != nil {
		return ReportRunResult{}, fmt.Errorf("insert report rows: %w", err)
	}

	reportRowsInsertedTotal.Add(float64(inserted))
	r.logger.Info().Int("setting_id", sid).Str("shift_date", shiftDate).Int64("inserted", inserted).Msg("report rows inserted")
	return ReportRunResult{Inserted: inserted, Count: int64(len(rows)), ShiftDate: shiftDate}, nil
}

func (r *ReportIngest) requestBody() ukg.SavedReportRequest {
	return ukg.SavedReportRequest{
		Company: ukg.ReportCompany{ShortName: r.company},
		Selectors: []ukg.ReportSelector{{
			Name:       "TACounterRecordDate",
			Parameters: map[string]string{"RangeType": "1", "CalendarType": "2"},
		}},
	}
}
