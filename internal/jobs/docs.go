// Package jobs provides scheduled background tasks for the point-of-sale service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds-enabled parser) and run
// through the same query handlers as the HTTP adapter, so they take the shared
// unit of work like any other caller.
//
// # Available Jobs
//
// 1. StaleOrderReportJob - warns about submitted orders that have waited on the
// active board longer than STALE_ORDER_AFTER. It only reads; orders are never
// completed or removed by a job.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, jobs.StaleOrderSettings{
//		After:    15 * time.Minute,
//		Schedule: "@every 1m",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
