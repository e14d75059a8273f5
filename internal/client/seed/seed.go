// Package seed carries the bundled default dataset used to populate an empty
// local cache when no backend is reachable. The data is embedded so a fresh
// install is usable fully offline.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

func load(name string, dest any) error {
	b, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("reading bundled %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decoding bundled %s: %w", name, err)
	}
	return nil
}

// Vehicles returns the bundled default vehicle collection.
func Vehicles() ([]models.VehicleRecord, error) {
	var v []models.VehicleRecord
	if err := load("vehicles.json", &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Users returns the bundled default user collection. Passwords here exist only
// so the demo accounts can log in offline; they are stripped before any record
// leaves the data service.
func Users() ([]models.UserRecord, error) {
	var u []models.UserRecord
	if err := load("users.json", &u); err != nil {
		return nil, err
	}
	return u, nil
}

// Taxonomy returns the bundled category/make/model taxonomy.
func Taxonomy() (models.VehicleTaxonomy, error) {
	var tx models.VehicleTaxonomy
	if err := load("taxonomy.json", &tx); err != nil {
		return nil, err
	}
	return tx, nil
}
