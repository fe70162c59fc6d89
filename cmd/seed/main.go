package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"resumatch/database"
	"resumatch/internal/models"
	"resumatch/internal/repository"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

var sampleJobs = []models.JobPost{
	{
		Title:           "Backend Engineer",
		Company:         "Northwind Labs",
		Location:        "Remote",
		Description:     "Design and run the services behind our hiring platform.",
		Requirements:    strings.Join([]string{"Go", "PostgreSQL", "REST APIs"}, "\n"),
		ExperienceYears: 3,
	},
	{
		Title:           "Data Engineer",
		Company:         "Contoso Analytics",
		Location:        "Berlin",
		Description:     "Build and maintain the pipelines feeding our candidate search.",
		Requirements:    strings.Join([]string{"Python", "SQL", "Airflow"}, "\n"),
		ExperienceYears: 2,
	},
	{
		Title:           "Platform Engineer",
		Company:         "Fabrikam",
		Location:        "Amsterdam",
		Description:     "Own the deployment tooling and observability stack.",
		Requirements:    strings.Join([]string{"Kubernetes", "Terraform", "Go"}, "\n"),
		ExperienceYears: 4,
	},
	{
		Title:           "Junior Software Engineer",
		Company:         "Northwind Labs",
		Location:        "Remote",
		Description:     "Work across the stack with a mentor on real product features.",
		Requirements:    strings.Join([]string{"Any programming language", "Willingness to learn"}, "\n"),
		ExperienceYears: 0,
	},
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	copies := seedCmd.Int("copies", 1, "How many copies of the sample job set to insert")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}

		jobRepo := repository.NewJobRepository(database.DB)
		created := 0
		for i := 0; i < *copies; i++ {
			for _, sample := range sampleJobs {
				job := sample
				if err := jobRepo.Create(&job); err != nil {
					log.Fatalf("Error seeding job %q: %v", job.Title, err)
				}
				created++
			}
		}
		log.Printf("Seeded %d job postings", created)

	case "clear":
		database.ConnectDatabase()

		result := database.DB.Unscoped().Where("1 = 1").Delete(&models.JobPost{})
		if result.Error != nil {
			log.Fatalf("Error clearing job postings: %v", result.Error)
		}
		log.Printf("Deleted %d job postings", result.RowsAffected)

	case "stats":
		database.ConnectDatabase()

		jobRepo := repository.NewJobRepository(database.DB)
		count, err := jobRepo.Count()
		if err != nil {
			log.Fatalf("Error counting jobs: %v", err)
		}
		log.Printf("Job postings: %d", count)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for resumatch")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Insert sample job postings")
	fmt.Println("               Options:")
	fmt.Println("                 --copies=N   How many copies of the sample set to insert (default: 1)")
	fmt.Println("  clear        Delete all job postings")
	fmt.Println("  stats        Show how many job postings exist")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host")
	fmt.Println("  DB_PORT      Database port")
	fmt.Println("  DB_USER      Database user")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name")
	fmt.Println("  DB_SSLMODE   Database SSL mode")
}
