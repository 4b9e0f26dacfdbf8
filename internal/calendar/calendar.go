package calendar

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one per-region, per-date row of the Ramadan calendar. The times
// are display strings; the bot never parses them.
type Entry struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Saharlik string `json:"saharlik"`
	Iftorlik string `json:"iftorlik"`
}

// Calendar is the read-only region → entries mapping loaded at startup.
type Calendar struct {
	regions map[string][]Entry
}

// Load reads and parses the calendar document. A missing or malformed
// document is an error; the caller treats it as fatal, the bot cannot run
// without its calendar.
func Load(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calendar: %w", err)
	}
	var regions map[string][]Entry
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}
	return &Calendar{regions: regions}, nil
}

// FindByDate returns the entry for (region, date), exact match only.
func (c *Calendar) FindByDate(region, date string) (Entry, bool) {
	for _, e := range c.regions[region] {
		if e.Date == date {
			return e, true
		}
	}
	return Entry{}, false
}
