package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes sweep results to a JSON file.
func WriteJSON(res *SweepResults, filename string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ReadJSON reads sweep results from a JSON file.
func ReadJSON(filename string) (*SweepResults, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var res SweepResults
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return &res, nil
}
