package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	employeesUpsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingest_employees_upserted_total",
		Help: "Total employee rows upserted by the ingestion pipeline",
	})

	reportRowsInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ingest_report_rows_inserted_total",
		Help: "Total report rows inserted by the ingestion pipeline",
	})

	ingestStageFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_stage_failures_total",
		Help: "Total scheduler stage failures by stage",
	}, []string{"stage"})
)
