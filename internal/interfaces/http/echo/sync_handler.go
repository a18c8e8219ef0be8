package echo

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JHCss26/ukg-internal/internal/application/ingest"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/ukg"
)

type EmployeeSyncer interface {
	FetchAndStoreAll(ctx context.Context) (ingest.SyncResult, error)
}

type SyncHandler struct {
	employees EmployeeSyncer
}

func NewSyncHandler(employees EmployeeSyncer) *SyncHandler {
	return &SyncHandler{employees: employees}
}

// Sync triggers a full employee sync outside the schedule.
func (h *SyncHandler) Sync(c echo.Context) error {
	out, err := h.employees.FetchAndStoreAll(c.Request().Context())
	if err != nil {
		return c.JSON(statusForError(err), apiResponse{Error: &errorBody{
			Code:    "sync_failed",
			Message: "employee sync failed",
		}})
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func statusForError(err error) int {
	var apiErr *ukg.APIError
	if errors.As(err, &apiErr) || errors.Is(err, ukg.ErrMissingToken) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
