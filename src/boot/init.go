package boot

import (
	"context"
	"log"
	"studio/src/config"
	"studio/src/lib"
	"studio/src/models"
	"time"

	"gorm.io/gorm"
)

const HOUSEKEEPING_JOB = "availability-housekeeping"

func InitDb(db *gorm.DB) *gorm.DB {
	err := db.AutoMigrate(
		&models.Package{},
		&models.AvailabilityWindow{},
		&models.Booking{},
		&models.EmailNotification{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	return db
}

type Deactivator interface {
	DeactivatePast(ctx context.Context, now time.Time) (int64, error)
}

func RunHousekeeping(svc Deactivator) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := svc.DeactivatePast(ctx, time.Now())
	if err != nil {
		log.Printf("Error deactivating past availability: %s\n", err.Error())
		return
	}
	log.Printf("Deactivated %d past availability windows\n", n)
}

// InitScheduler registers the housekeeping job and starts the shared
// scheduler. It is a no-op when housekeeping is disabled.
func InitScheduler(cfg config.App, svc Deactivator) error {
	if !cfg.HousekeepingEnabled {
		return nil
	}
	if _, err := lib.CreateCronJob(HOUSEKEEPING_JOB, cfg.HousekeepingCron, RunHousekeeping, svc); err != nil {
		log.Printf("Error scheduling housekeeping: %s\n", err.Error())
		return err
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		return err
	}
	sched.Start()
	log.Println("Jobs in queue:", len(sched.Jobs()))
	return nil
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Printf("Error stopping scheduler: %s\n", err.Error())
	}
}
