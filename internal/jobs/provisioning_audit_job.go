package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at the top of every fifth minute.
const DefaultAuditSchedule = "0 */5 * * * *"

const auditTimeout = 30 * time.Second

// UnprovisionedRestaurantsLister is satisfied by queries.ListUnprovisionedRestaurantsQueryHandler.
type UnprovisionedRestaurantsLister interface {
	Handle(
		ctx context.Context,
		query queries.ListUnprovisionedRestaurantsQuery,
	) (queries.ListUnprovisionedRestaurantsQueryResponse, error)
}

// UnprovisionedGauge receives the number of restaurants found by the last audit.
type UnprovisionedGauge interface {
	SetUnprovisioned(n int)
}

// ProvisioningAuditJob reports restaurants whose location document is missing.
// It only observes: operators decide whether to re-create or delete them.
type ProvisioningAuditJob struct {
	lister   UnprovisionedRestaurantsLister
	gauge    UnprovisionedGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewProvisioningAuditJob(
	lister UnprovisionedRestaurantsLister,
	gauge UnprovisionedGauge,
	schedule string,
	logger *slog.Logger,
) *ProvisioningAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &ProvisioningAuditJob{
		lister:   lister,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "provisioning_audit_job"),
	}
}

// Start registers the audit with the cron scheduler. An invalid schedule is returned as is.
func (j *ProvisioningAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Provisioning audit job started", "schedule", j.schedule)
	return nil
}

// Run performs a single audit.
func (j *ProvisioningAuditJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	query, err := queries.NewListUnprovisionedRestaurantsQuery()
	if err != nil {
		j.logger.ErrorContext(ctx, "Provisioning audit failed", "error", err)
		return
	}

	response, err := j.lister.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Provisioning audit failed", "error", err)
		return
	}

	for _, r := range response.Restaurants {
		j.logger.WarnContext(ctx, "Restaurant has no location document",
			"restaurant_id", r.ID.String(),
			"owner_id", r.OwnerID.String(),
			"name", r.Name,
			"created_at", r.CreatedAt,
		)
	}
	j.gauge.SetUnprovisioned(len(response.Restaurants))
}

// Stop waits for a running audit to finish.
func (j *ProvisioningAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Provisioning audit job stopped")
}
