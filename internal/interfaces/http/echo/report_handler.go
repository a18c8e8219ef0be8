package echo

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JHCss26/ukg-internal/internal/application/ingest"
)

type ReportRunner interface {
	Preview(ctx context.Context, settingID string) (ingest.ReportPreview, error)
	RunAndStore(ctx context.Context, settingID string) (ingest.ReportRunResult, error)
}

type ReportHandler struct {
	reports ReportRunner
}

func NewReportHandler(reports ReportRunner) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Preview fetches and flattens a saved report without writing to the
// database.
func (h *ReportHandler) Preview(c echo.Context) error {
	out, err := h.reports.Preview(c.Request().Context(), c.Param("settingId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

// Run fetches, flattens, and stores a saved report under the ingestion
// idempotency policy.
func (h *ReportHandler) Run(c echo.Context) error {
	out, err := h.reports.RunAndStore(c.Request().Context(), c.Param("settingId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ReportHandler) fail(c echo.Context, err error) error {
	if errors.Is(err, ingest.ErrInvalidSettingID) {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_setting_id",
			Message: "settingId must be numeric",
		}})
	}
	return c.JSON(statusForError(err), apiResponse{Error: &errorBody{
		Code:    "report_failed",
		Message: "report operation failed",
	}})
}
