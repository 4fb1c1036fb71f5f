package geocoding

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/database"
)

const (
	zipcodeCSVURL = "https://raw.githubusercontent.com/midwire/free_zipcode_data/develop/all_us_zipcodes.csv"
)

// ProvisionZipcodes downloads and imports the zipcode table unless it already exists
func ProvisionZipcodes(ctx context.Context, db *sql.DB, dataDir string, logger *zap.Logger) error {
	exists, err := database.TableExists(db, "zipcodes")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	logger.Info("zipcode table not found, provisioning")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	csvPath := filepath.Join(dataDir, "all_us_zipcodes.csv")
	logger.Info("downloading zipcode data", zap.String("url", zipcodeCSVURL))
	client := &http.Client{Timeout: 5 * time.Minute}
	if err := database.Download(ctx, client, zipcodeCSVURL, csvPath); err != nil {
		return fmt.Errorf("downloading zipcode CSV: %w", err)
	}
	defer os.Remove(csvPath)

	file, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	count, err := importZipcodes(db, file)
	if err != nil {
		return fmt.Errorf("building zipcode table: %w", err)
	}

	logger.Info("zipcode table provisioned", zap.Int("zipcodes", count))
	return nil
}

// importZipcodes loads the free_zipcode_data CSV layout into the zipcodes table:
// Zipcode,ZipCodeType,City,State,LocationType,Lat,Long,...
func importZipcodes(db *sql.DB, r io.Reader) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS zipcodes (
			zipcode TEXT PRIMARY KEY,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_zipcodes_state ON zipcodes(state);
	`)
	if err != nil {
		return 0, fmt.Errorf("creating table: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO zipcodes (zipcode, city, state, latitude, longitude) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// header
	if _, err := reader.Read(); err != nil {
		return 0, err
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(record) < 7 {
			continue
		}

		lat, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			continue
		}

		if _, err := stmt.Exec(record[0], record[2], record[3], lat, lon); err != nil {
			continue
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}
