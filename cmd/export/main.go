package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"typemood/internal/config"
	"typemood/internal/database"
	"typemood/internal/repository"
	"typemood/internal/service"
)

func main() {
	// Define subcommands
	csvCmd := flag.NewFlagSet("csv", flag.ExitOnError)
	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)

	// CSV flags
	csvVisitor := csvCmd.String("visitor", "", "Visitor ID to export (required)")
	csvOutput := csvCmd.String("output", "", "Output file path (default: typing_history_YYYYMMDD.csv)")

	// Report flags
	reportVisitor := reportCmd.String("visitor", "", "Visitor ID to report on (required)")
	reportEmail := reportCmd.String("to", "", "Email the report to this address (requires SES configuration)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(db)

	switch os.Args[1] {
	case "csv":
		csvCmd.Parse(os.Args[2:])
		if *csvVisitor == "" {
			fmt.Println("Error: -visitor flag is required")
			csvCmd.PrintDefaults()
			os.Exit(1)
		}
		handleCSV(service.NewExportService(sessionRepo), *csvVisitor, *csvOutput)

	case "report":
		reportCmd.Parse(os.Args[2:])
		if *reportVisitor == "" {
			fmt.Println("Error: -visitor flag is required")
			reportCmd.PrintDefaults()
			os.Exit(1)
		}
		handleReport(cfg, service.NewStatsService(sessionRepo), *reportVisitor, *reportEmail)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleCSV(exportService *service.ExportService, visitorID, outputPath string) {
	if outputPath == "" {
		outputPath = service.ExportFilename(time.Now().UTC())
	}

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	log.Printf("Exporting history for visitor %s to: %s", visitorID, outputPath)
	if err := exportService.WriteCSV(file, visitorID); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Println("Export complete!")
}

func handleReport(cfg *config.Config, statsService *service.StatsService, visitorID, toEmail string) {
	summary, err := statsService.Summary(visitorID)
	if err != nil {
		log.Fatalf("Failed to compute summary: %v", err)
	}

	fmt.Printf("30-day summary for visitor %s\n", visitorID)
	fmt.Printf("  Sessions:       %d\n", summary.TotalSessions)
	fmt.Printf("  Avg speed:      %.1f WPM\n", summary.AvgSpeed)
	fmt.Printf("  Avg focus:      %.1f\n", summary.AvgFocus)
	fmt.Printf("  Avg stress:     %.1f\n", summary.AvgStress)
	fmt.Printf("  Avg confidence: %.1f\n", summary.AvgConfidence)
	for _, trend := range summary.MoodTrends {
		fmt.Printf("  %s  focus %.1f  stress %.1f  confidence %.1f\n",
			trend.Date, trend.Focus, trend.Stress, trend.Confidence)
	}

	if toEmail == "" {
		return
	}

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	if !emailService.IsEnabled() {
		log.Fatal("Email service is not configured, set SES_FROM_EMAIL")
	}

	if err := emailService.SendMoodReport(context.Background(), toEmail, summary); err != nil {
		log.Fatalf("Failed to send report: %v", err)
	}
}

func printUsage() {
	fmt.Println("TypeMood Export Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  export csv [options]       Export a visitor's history as CSV")
	fmt.Println("  export report [options]    Print (and optionally email) a 30-day summary")
	fmt.Println()
	fmt.Println("CSV Options:")
	fmt.Println("  -visitor <id>     Visitor ID to export (required)")
	fmt.Println("  -output <file>    Output file path (default: typing_history_YYYYMMDD.csv)")
	fmt.Println()
	fmt.Println("Report Options:")
	fmt.Println("  -visitor <id>     Visitor ID to report on (required)")
	fmt.Println("  -to <email>       Email the report to this address (requires SES configuration)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  export csv -visitor 6f1c... -output history.csv")
	fmt.Println("  export report -visitor 6f1c...")
	fmt.Println("  export report -visitor 6f1c... -to me@example.com")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DATABASE_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./typemood.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  SES_FROM_EMAIL   Sender address for emailed reports")
}
