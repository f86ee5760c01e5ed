package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"axiapac.com/lms/attendance/app"
	"axiapac.com/lms/attendance/reminder"
	"axiapac.com/lms/attendance/store"
	"axiapac.com/lms/config"
	"axiapac.com/lms/core"
	"axiapac.com/lms/infrastructure/communication"
	"axiapac.com/lms/infrastructure/devops"
	"github.com/aws/aws-lambda-go/lambda"
	"gorm.io/gorm"
)

type ReminderEvent struct {
	Databases *[]string `json:"databases"`
	CourseID  int32     `json:"courseId"`
	DryRun    bool      `json:"dryRun"`
}

func RemindUnfilled(ctx context.Context, cfg *config.Config, event ReminderEvent) (map[string]reminder.Result, error) {
	dsn, err := devops.ResolveDSN(ctx, cfg.DSN, cfg.DBEntry, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database: %w", err)
	}

	dm, err := core.New(dsn, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dm.Close()
	dm.LogLevel = core.LogLevelError

	var targetDatabases []string
	if event.Databases == nil {
		fmt.Printf("[INFO] No databases provided, fetching all databases...\n")
		targetDatabases, err = dm.GetAllDatabases(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get all databases: %w", err)
		}
	} else {
		targetDatabases = *event.Databases
	}

	mailer, err := communication.NewMailer(ctx, cfg.MailFrom)
	if err != nil {
		return nil, err
	}
	slack := communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
		InfoChannelID:  cfg.Slack.InfoChannelID,
		ErrorChannelID: cfg.Slack.ErrorChannelID,
	})

	results := make(map[string]reminder.Result)
	for _, schema := range targetDatabases {
		fmt.Printf("[INFO] Checking attendance in database: %s\n", schema)
		err := dm.Exec(ctx, schema, func(db *gorm.DB) error {
			svc, err := app.Service(cfg, db)
			if err != nil {
				return err
			}
			r := &reminder.Reminder{
				Service:  svc,
				Students: store.NewUsers(db),
				Mailer:   mailer,
				Notifier: slack,
				Schema:   schema,
				DryRun:   event.DryRun,
			}
			res, err := r.Run(ctx, event.CourseID)
			if err != nil {
				return err
			}
			results[schema] = res
			return nil
		})
		if err != nil {
			fmt.Printf("[ERROR] failed to send reminders for database %s: %v\n", schema, err)
			continue
		}
	}

	fmt.Printf("[INFO] Finished attendance reminders\n")
	return results, nil
}

func HandleRequest(ctx context.Context, event ReminderEvent) (map[string]reminder.Result, error) {
	eventJson, _ := json.Marshal(event)
	fmt.Printf("[INFO] Event: %s\n", string(eventJson))

	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return RemindUnfilled(ctx, cfg, event)
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
		return
	}

	results, err := HandleRequest(context.Background(), ReminderEvent{DryRun: true})
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	resJson, _ := json.MarshalIndent(results, "", "  ")
	fmt.Printf("[SUCCESS] Results:\n%s\n", string(resJson))
}
