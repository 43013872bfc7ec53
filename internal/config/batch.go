package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// timestampLayout is the format SuDoSoS stores in the createdAt/updatedAt
// columns (TypeORM datetime(6)).
const timestampLayout = "2006-01-02 15:04:05.000000"

// Batch holds the constants stamped into every generated statement. The
// defaults identify the July 2022 cutover batch; a YAML file can override
// them for a future re-run without code changes.
type Batch struct {
	Timestamp   string `yaml:"timestamp" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	GewisTable  string `yaml:"gewis_table" validate:"required"`
	GewisAlias  string `yaml:"gewis_alias" validate:"required"`
	UserTable   string `yaml:"user_table" validate:"required"`
	UserAlias   string `yaml:"user_alias" validate:"required"`
}

// DefaultBatch returns the constants of the original 2022-07-01 migration.
func DefaultBatch() Batch {
	return Batch{
		Timestamp:   "2022-07-01 00:00:00.000000",
		Description: "Initial transfer from SuSOS",
		GewisTable:  "gewis_user",
		GewisAlias:  "g",
		UserTable:   "user",
		UserAlias:   "u",
	}
}

// LoadBatch reads a batch configuration file on top of the defaults. Fields
// omitted from the file keep their default values.
func LoadBatch(path string) (Batch, error) {
	batch := DefaultBatch()

	data, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("failed to read batch config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &batch); err != nil {
		return Batch{}, fmt.Errorf("failed to parse batch config %s: %w", path, err)
	}

	if err := batch.Validate(); err != nil {
		return Batch{}, fmt.Errorf("invalid batch config %s: %w", path, err)
	}

	return batch, nil
}

// Validate checks that every field is present and that the timestamp matches
// the SuDoSoS datetime(6) layout, since it ends up inside quoted SQL.
func (b Batch) Validate() error {
	if err := validator.New().Struct(b); err != nil {
		return err
	}

	if _, err := time.Parse(timestampLayout, b.Timestamp); err != nil {
		return fmt.Errorf("timestamp must match %q: %w", timestampLayout, err)
	}

	return nil
}
