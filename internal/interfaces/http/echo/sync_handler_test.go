package echo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/JHCss26/ukg-internal/internal/application/ingest"
	httpecho "github.com/JHCss26/ukg-internal/internal/interfaces/http/echo"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/ukg"
)

type fakeEmployeeSyncer struct {
	out ingest.SyncResult
	err error
}

func (f *fakeEmployeeSyncer) FetchAndStoreAll(ctx context.Context) (ingest.SyncResult, error) {
	if f.err != nil {
		return ingest.SyncResult{}, f.err
	}
	return f.out, nil
}

func TestSyncHandlerSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	syncHandler := httpecho.NewSyncHandler(&fakeEmployeeSyncer{out: ingest.SyncResult{
		Upserted: 42,
		Skipped:  3,
	}})
	httpecho.RegisterRoutes(e, syncHandler, httpecho.NewReportHandler(&fakeReportRunner{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/sync", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}

	data := got["data"].(map[string]any)
	if data["upserted"] != float64(42) {
		t.Fatalf("unexpected upserted: %#v", data["upserted"])
	}
	if data["skipped"] != float64(3) {
		t.Fatalf("unexpected skipped: %#v", data["skipped"])
	}
}

func TestSyncHandlerVendorFailure(t *testing.T) {
	t.Parallel()

	e := echo.New()
	syncHandler := httpecho.NewSyncHandler(&fakeEmployeeSyncer{
		err: &ukg.APIError{StatusCode: http.StatusUnauthorized, Endpoint: "employees"},
	})
	httpecho.RegisterRoutes(e, syncHandler, httpecho.NewReportHandler(&fakeReportRunner{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/sync", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	body := got["error"].(map[string]any)
	if body["code"] != "sync_failed" {
		t.Fatalf("unexpected error code: %#v", body["code"])
	}
}

func TestSyncHandlerStoreFailure(t *testing.T) {
	t.Parallel()

	e := echo.New()
	syncHandler := httpecho.NewSyncHandler(&fakeEmployeeSyncer{
		err: errors.New("upsert employees batch: connection refused"),
	})
	httpecho.RegisterRoutes(e, syncHandler, httpecho.NewReportHandler(&fakeReportRunner{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/sync", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
