package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"gigboard/internal/config"
	"gigboard/internal/database/migrations"
)

func main() {
	var (
		dir  = flag.String("dir", "./migrations", "directory containing migration files")
		seed = flag.Bool("seed", false, "also run seed data migrations")
		down = flag.Bool("down", false, "roll back all migrations instead of applying them")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()

	sqldb, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer sqldb.Close()

	if err := sqldb.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, pgdialect.New())

	runner := migrations.NewRunner(bunDB, migrations.MigrateOptions{
		MigrationsDir: *dir,
		SeedData:      *seed,
	})
	defer runner.Close()

	if *down {
		if err := runner.MigrateDown(); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Println("All migrations rolled back")
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("Migrations completed")
}
