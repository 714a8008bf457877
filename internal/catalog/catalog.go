package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Job is a single posting from the catalog fixture. The catalog is supplied
// externally and is read-only: nothing in this repository mutates a Job after
// load.
type Job struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          string   `json:"mode"`
	Experience    string   `json:"experience"`
	Skills        []string `json:"skills"`
	Description   string   `json:"description"`
	Source        string   `json:"source"`
	PostedDaysAgo int      `json:"postedDaysAgo"`
	SalaryRange   string   `json:"salaryRange"`
	ApplyURL      string   `json:"applyUrl"`
}

type Catalog struct {
	Jobs []*Job
}

// Load reads the catalog fixture from the given JSON file. The file holds a
// plain array of job objects.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	var raw []map[string]any
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding catalog file %q: %w", path, err)
	}

	return FromItems(raw)
}

// FromItems decodes loosely-typed items (as produced by a JSON or YAML
// decoder) into the catalog.
func FromItems(items []map[string]any) (*Catalog, error) {
	var jobs []*Job

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &jobs,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding catalog items: %w", err)
	}

	return &Catalog{Jobs: jobs}, nil
}

func (c *Catalog) Len() int {
	return len(c.Jobs)
}

func (c *Catalog) FindByID(id int) *Job {
	for _, job := range c.Jobs {
		if job.ID == id {
			return job
		}
	}
	return nil
}
