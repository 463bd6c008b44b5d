// Package jobs provides scheduled background tasks for the cargo tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CacheSweepJob - Runs every ten minutes to evict expired geocode cache
// entries from the in-memory cache
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(geocodeCache, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// The sweep job is only needed with the in-memory cache; Redis expires its
// own keys.
package jobs
