package main

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"janseva/config"
	"janseva/database"
	"janseva/models"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("LocationMaster.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	statesInserted := 0
	districtsInserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		stateName := getField(row, headerIndex, "stateName")
		stateCode := getField(row, headerIndex, "stateCode")
		districtName := getField(row, headerIndex, "districtName")
		districtCode := getField(row, headerIndex, "districtCode")

		if stateName == "" || stateCode == "" {
			skipped++
			continue
		}

		// Upsert the state
		var existingState models.State
		result := database.Database.Db.Where("state_name = ?", stateName).First(&existingState)
		if result.Error != nil {
			state := models.State{StateName: stateName, StateCode: stateCode}
			if err := database.Database.Db.Create(&state).Error; err != nil {
				log.Printf("Error inserting state %s: %v", stateName, err)
				continue
			}
			statesInserted++
		} else if existingState.StateCode != stateCode {
			existingState.StateCode = stateCode
			if err := database.Database.Db.Save(&existingState).Error; err != nil {
				log.Printf("Error updating state %s: %v", stateName, err)
				continue
			}
			updated++
		}

		if districtName == "" || districtCode == "" {
			skipped++
			continue
		}

		// Upsert the district
		var existingDistrict models.District
		result = database.Database.Db.Where("district_name = ?", districtName).First(&existingDistrict)
		if result.Error != nil {
			district := models.District{
				DistrictName: districtName,
				DistrictCode: districtCode,
				StateCode:    stateCode,
			}
			if err := database.Database.Db.Create(&district).Error; err != nil {
				log.Printf("Error inserting district %s: %v", districtName, err)
				continue
			}
			districtsInserted++
		} else {
			existingDistrict.DistrictCode = districtCode
			existingDistrict.StateCode = stateCode
			if err := database.Database.Db.Save(&existingDistrict).Error; err != nil {
				log.Printf("Error updating district %s: %v", districtName, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("States inserted: %d", statesInserted)
	log.Printf("Districts inserted: %d", districtsInserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
