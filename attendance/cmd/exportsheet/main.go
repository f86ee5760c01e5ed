package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"axiapac.com/lms/attendance/app"
	"axiapac.com/lms/attendance/export"
	"axiapac.com/lms/attendance/store"
	"axiapac.com/lms/config"
	"axiapac.com/lms/infrastructure/filesystem"
)

func main() {
	userID := flag.Int("user", 0, "LMS user id")
	out := flag.String("out", "", "write the workbook to this file instead of the export bucket")
	list := flag.Bool("list", false, "list the user's exported sheets in the export bucket")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}

	ctx := context.Background()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *list {
		bucket, err := filesystem.NewBucket(ctx, cfg.ExportBucket)
		if err != nil {
			log.Fatal(err)
		}
		keys, err := bucket.ListFiles(ctx, fmt.Sprintf("attendance/%d/", *userID))
		if err != nil {
			log.Fatal(err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return
	}

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	user, err := store.NewUsers(db).FindUser(ctx, int32(*userID))
	if err != nil {
		log.Fatal(err)
	}
	if user == nil {
		log.Fatalf("user %d not found", *userID)
	}

	svc, err := app.Service(cfg, db)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := svc.AttendanceList(ctx, user.CourseID, user.LmsUserID)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := export.WriteAttendanceSheet(&buf, *user, rows); err != nil {
		log.Fatal(err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[INFO] wrote %d days to %s\n", len(rows), *out)
		return
	}

	if cfg.ExportBucket == "" {
		log.Fatal("no -out file and no export bucket configured")
	}
	bucket, err := filesystem.NewBucket(ctx, cfg.ExportBucket)
	if err != nil {
		log.Fatal(err)
	}
	key := export.ObjectKey(*user, svc.Clock.Now())
	if err := bucket.WriteFile(ctx, key, export.ContentType, &buf); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[INFO] uploaded s3://%s/%s\n", cfg.ExportBucket, key)
}
