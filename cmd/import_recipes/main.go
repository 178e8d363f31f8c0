// Command import_recipes bulk-loads a recipe CSV into Postgres using the
// COPY protocol. The file must carry a header row; recognized columns are
// title, description, category, author, image_url, ingredients,
// instructions, rating, prep_time_minutes, cook_time_minutes, servings and
// calories. Unknown columns are ignored.
package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/pantrycook/pantrycook/backend/config"
)

var columns = []string{
	"title", "description", "category", "author", "image_url",
	"ingredients", "instructions", "rating",
	"prep_time_minutes", "cook_time_minutes", "servings", "calories",
}

func main() {
	file := flag.String("file", "", "path to the recipe CSV file")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer func() { _ = f.Close() }()

	count, err := importCSV(db, f)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported %d recipes", count)
}

func importCSV(db *sql.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index["title"]; !ok {
		return 0, fmt.Errorf("CSV must have a title column")
	}
	if _, ok := index["ingredients"]; !ok {
		return 0, fmt.Errorf("CSV must have an ingredients column")
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(pq.CopyIn("recipes", columns...))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare COPY: %w", err)
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", count+2, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rating, err := parseFloat(field("rating"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid rating: %w", count+2, err)
		}
		calories, err := parseFloat(field("calories"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid calories: %w", count+2, err)
		}
		prep, err := parseInt(field("prep_time_minutes"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid prep_time_minutes: %w", count+2, err)
		}
		cook, err := parseInt(field("cook_time_minutes"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid cook_time_minutes: %w", count+2, err)
		}
		servings, err := parseInt(field("servings"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid servings: %w", count+2, err)
		}

		_, err = stmt.Exec(
			field("title"), field("description"), field("category"),
			field("author"), field("image_url"), field("ingredients"),
			field("instructions"), rating, prep, cook, servings, calories,
		)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", count+2, err)
		}
		count++
	}

	// Flush the COPY buffer.
	if _, err := stmt.Exec(); err != nil {
		return 0, fmt.Errorf("failed to flush COPY: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
