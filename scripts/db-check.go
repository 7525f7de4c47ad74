package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/agro-riego/api/config"
	"github.com/agro-riego/api/database"
	"github.com/agro-riego/api/utils"
	"go.uber.org/zap"
)

func main() {
	migrate := flag.Bool("migrate", false, "migrate the schema before running diagnostics")
	skipDiagnostics := flag.Bool("skip-diagnostics", false, "only connect (and migrate), do not print diagnostics")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.LogLevel,
		Format:  "console",
		Service: cfg.ServiceName + "-db-check",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("🔍 Checking database connection...")
	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if *migrate {
		if err := database.Migrate(db, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	if *skipDiagnostics {
		return
	}

	report, err := database.RunDiagnostics(context.Background(), db)
	if err != nil {
		logger.Fatal("Diagnostics failed", zap.Error(err))
	}

	logger.Info("📋 Tables", zap.Strings("tables", report.Tables))
	if report.Statistics.PlotsWithoutTrees > 0 {
		logger.Warn("⚠️ Plots without trees", zap.Int64("count", report.Statistics.PlotsWithoutTrees))
	}

	logger.Info("🔗 Checking relationships...")
	for _, p := range report.Relationships.Plots {
		logger.Info("🏞️ Plot",
			zap.Uint("id", p.ID),
			zap.String("name", p.Name),
			zap.Int64("trees", p.Trees),
			zap.Int64("schedules", p.Schedules),
			zap.Int64("history", p.History),
			zap.Int64("alerts", p.Alerts),
		)
	}
	for _, t := range report.Relationships.Trees {
		logger.Info("🌳 Tree",
			zap.Uint("id", t.ID),
			zap.String("plot", t.PlotName),
			zap.Int64("sensors", t.Sensors),
			zap.Int64("alerts", t.Alerts),
		)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logger.Fatal("Failed to write report", zap.Error(err))
	}

	logger.Info("✅ Database check completed")
}
