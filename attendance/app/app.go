package app

import (
	"context"
	"fmt"
	"log"
	"time"

	attendance "axiapac.com/lms/attendance/core"
	"axiapac.com/lms/attendance/messages"
	"axiapac.com/lms/attendance/store"
	"axiapac.com/lms/config"
	"axiapac.com/lms/core"
	"axiapac.com/lms/infrastructure/devops"
	"axiapac.com/lms/utils"
	"gorm.io/gorm"
)

// Location returns the configured time zone, or Brisbane time when the zone database
// is not available.
func Location(cfg *config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Printf("[WARN] time zone %q: %v, using %s", cfg.TimeZone, err, utils.BrisbaneTZ)
		return utils.BrisbaneTZ
	}
	return loc
}

func WorkHours(cfg *config.Config) (attendance.WorkHours, error) {
	hours, err := attendance.ParseWorkHours(cfg.WorkStartTime, cfg.WorkEndTime)
	if err != nil {
		return attendance.WorkHours{}, fmt.Errorf("work hours: %w", err)
	}
	return hours, nil
}

// OpenDB connects a command line tool or lambda to the configured schema.
func OpenDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	dsn, err := devops.ResolveDSN(ctx, cfg.DSN, cfg.DBEntry, cfg.Database)
	if err != nil {
		return nil, err
	}
	return core.Connect(dsn, core.ParseLogLevel(cfg.LogLevel))
}

// Service builds an attendance service over db from configuration.
func Service(cfg *config.Config, db *gorm.DB) (*attendance.Service, error) {
	hours, err := WorkHours(cfg)
	if err != nil {
		return nil, err
	}
	resolver, err := messages.Load(cfg.MessagesFile)
	if err != nil {
		return nil, err
	}
	return &attendance.Service{
		Clock:    attendance.SystemClock{Location: Location(cfg)},
		Calendar: store.NewCalendar(db, hours),
		Repo:     store.NewRepository(db),
		Messages: resolver,
	}, nil
}
