package record

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ResultBatch is the on-disk export format of the simulation engine: one
// YAML document holding the final-state records of a set of runs.
type ResultBatch struct {
	Results []Result `yaml:"results" json:"results"`
}

// LoadResults reads a YAML batch file and returns its records. Records that
// arrive without a run ID get a fresh UUID so downstream reporting can
// reference them.
func LoadResults(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var batch ResultBatch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	for i := range batch.Results {
		if batch.Results[i].RunID == "" {
			batch.Results[i].RunID = uuid.New().String()
		}
	}
	logrus.Debugf("loaded %d result records from %s", len(batch.Results), path)
	return batch.Results, nil
}
