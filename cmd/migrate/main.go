package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"staffing-crm-api/db/migrations"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true",
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_DATABASE"),
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		if err := migrations.Up(db); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		log.Println("Migrations applied")
	case "down":
		if err := migrations.Down(db); err != nil {
			log.Fatalf("failed to roll back migration: %v", err)
		}
		log.Println("Migration rolled back")
	default:
		log.Fatalf("unknown direction %q (want up or down)", direction)
	}
}
