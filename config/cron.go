package config

import (
	"os"

	"lendstock.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"overduesweep": {Schedule: sweepSchedule(), Job: jobs.OverdueSweepJob},
	// Add more jobs here
}

func sweepSchedule() string {
	if s := os.Getenv("SWEEP_SCHEDULE"); s != "" {
		return s
	}
	return "@every 30s"
}
