package staticlist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
)

type record struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// Load reads the externally supplied customer list from a JSON file.
// Records are assigned positions in file order; suggestion results preserve
// that order. Records with an empty name are skipped.
func Load(path string) ([]entity.Customer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open customer list: %w", err)
	}
	defer file.Close()

	var records []record
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode customer list: %w", err)
	}

	customers := make([]entity.Customer, 0, len(records))
	pos := 0
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		pos++
		customers = append(customers, entity.Customer{
			Position: pos,
			Name:     r.Name,
			Phone:    r.Phone,
		})
	}
	return customers, nil
}
