// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ProvisioningAuditJob lists restaurants that exist in the relational store but have
// no location document, logs each one and exports their count as a gauge. Such
// restaurants are left behind when a creation saga could not compensate. The job
// never retries or deletes anything.
//
// # Usage
//
//	audit := jobs.NewProvisioningAuditJob(listHandler, recorder, cfg.AuditSchedule, logger)
//	manager := jobs.NewJobManager(audit)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Scheduling
//
// Schedules take a leading seconds field ("0 */5 * * * *"), because the scheduler is
// created with cron.WithSeconds.
package jobs
