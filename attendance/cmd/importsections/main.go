package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"axiapac.com/lms/attendance/app"
	"axiapac.com/lms/attendance/model"
	"axiapac.com/lms/attendance/store"
	"axiapac.com/lms/config"
)

func main() {
	courseID := flag.Int("course", 0, "course id")
	file := flag.String("file", "", "csv or xlsx file with date,section[,id] rows")
	dryRun := flag.Bool("dry-run", false, "parse only")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if *courseID == 0 || *file == "" {
		log.Fatal("-course and -file are required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("failed to open file %s: %v", *file, err)
	}
	defer f.Close()

	var rows [][]string
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".xlsx":
		rows, err = readXLSX(f)
	default:
		rows, err = readCSV(f)
	}
	if err != nil {
		log.Fatal(err)
	}

	sections, err := toSections(rows, int32(*courseID))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[INFO] parsed %d sections\n", len(sections))
	if *dryRun {
		for _, s := range sections {
			fmt.Printf("  %s %s\n", model.DateKey(time.Time(s.TrainingDate)), s.SectionName)
		}
		return
	}

	ctx := context.Background()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.SaveSections(ctx, db, sections); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[INFO] saved %d sections for course %d\n", len(sections), *courseID)
}
