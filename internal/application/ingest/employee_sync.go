// Package ingest holds the ingestion pipeline use cases: employee
// enrichment, saved report flattening and storage, and the periodic
// scheduler that drives both.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JHCss26/ukg-internal/internal/domain/workforce"
	"github.com/JHCss26/ukg-internal/internal/infrastructure/ukg"
)

type rosterClient interface {
	ListEmployees(ctx context.Context) ([]ukg.RosterEntry, error)
	GetEmployeeDetail(ctx context.Context, accountID string) (ukg.EmployeeDetail, error)
}

type SyncResult struct {
	Upserted int64 `json:"upserted"`
	Skipped  int   `json:"skipped,omitempty"`
}

type EmployeeSyncConfig struct {
	// Workers bounds concurrent per-employee detail fetches.
	Workers int
}

// EmployeeSync pulls the vendor roster, enriches each entry with its pay
// period profile, and upserts the result keyed on account id.
type EmployeeSync struct {
	client rosterClient
	store  workforce.EmployeeStore
	cfg    EmployeeSyncConfig
	logger zerolog.Logger
}

func NewEmployeeSync(client rosterClient, store workforce.EmployeeStore, cfg EmployeeSyncConfig, logger zerolog.Logger) *EmployeeSync {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &EmployeeSync{
		client: client,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchAndStoreAll runs one full employee sync. A single employee's
// detail failure leaves its derived field nil and never aborts the batch;
// a roster entry with no usable identifier is skipped. Output ordering is
// unspecified.
func (s *EmployeeSync) FetchAndStoreAll(ctx context.Context) (SyncResult, error) {
	roster, err := s.client.ListEmployees(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list employees: %w", err)
	}
	if len(roster) == 0 {
		return SyncResult{}, nil
	}

	type job struct {
		accountID string
		entry     ukg.RosterEntry
	}
	jobs := make(chan job)
	results := make(chan workforce.Employee, len(roster))

	workers := s.cfg.Workers
	if workers > len(roster) {
		workers = len(roster)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- s.enrich(ctx, j.accountID, j.entry)
			}
		}()
	}

	skipped := 0
	for _, entry := range roster {
		accountID := resolveAccountID(entry)
		if accountID == "" {
			skipped++
			s.logger.Warn().Msg("roster entry has no usable identifier, skipping")
			continue
		}
		jobs <- job{accountID: accountID, entry: entry}
	}
	close(jobs)
	wg.Wait()
	close(results)

	employees := make([]workforce.Employee, 0, len(roster))
	for employee := range results {
		employees = append(employees, employee)
	}
	if len(employees) == 0 {
		return SyncResult{Skipped: skipped}, nil
	}

	upserted, err := s.store.UpsertBatch(ctx, employees)
	if err != nil {
		return SyncResult{}, fmt.Errorf("upsert employees: %w", err)
	}

	employeesUpsertedTotal.Add(float64(upserted))
	s.logger.Info().Int64("upserted", upserted).Int("skipped", skipped).Msg("employees upserted")
	return SyncResult{Upserted: upserted, Skipped: skipped}, nil
}

func (s *EmployeeSync) enrich(ctx context.Context, accountID string, entry ukg.RosterEntry) workforce.Employee {
	employee := workforce.Employee{
		AccountID:         accountID,
		Username:          entry.Username,
		EmployeeID:        flexPtr(entry.EmployeeID),
		FirstName:         entry.FirstName,
		LastName:          entry.LastName,
		FullName:          entry.FullName,
		NationalInsurance: entry.NationalInsurance,
		PrimaryEmail:      entry.PrimaryEmail,
		PreferredPhone:    entry.PreferredPhone,
		AccountStatus:     entry.AccountStatus,
		TimeZone:          entry.TimeZone,
		FirstScreen:       entry.FirstScreen,
	}
	if entry.Address != nil {
		employee.AddressLine1 = entry.Address.AddressLine1
		employee.AddressLine2 = entry.Address.AddressLine2
		employee.Country = entry.Address.Country
		employee.City = entry.Address.City
		employee.Zip = entry.Address.Zip
	}

	detail, err := s.client.GetEmployeeDetail(ctx, accountID)
	if err != nil {
		s.logger.Warn().Str("account_id", accountID).Err(err).Msg("pay period profile lookup failed")
		return employee
	}
	employee.PayPeriodProfileName = detail.PayPeriodProfileName()
	return employee
}

// resolveAccountID derives the record key by first-available of the
// vendor's alternate identifiers.
func resolveAccountID(entry ukg.RosterEntry) string {
	candidates := []string{
		string(entry.AccountID),
		string(entry.ExternalID),
		string(entry.EmployeeID),
		deref(entry.Username),
	}
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func flexPtr(value ukg.FlexString) *string {
	if value == "" {
		return nil
	}
	s := string(value)
	return &s
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
