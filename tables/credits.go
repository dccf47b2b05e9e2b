package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CreditsTable is DBTN_TO_CREDITS: a credit magnitude per double-BTN
// index (spec.md §4.6: "Convert BTN to a trade-credit magnitude via the
// DBTN_TO_CREDITS table (index 2*BTN)").
type CreditsTable struct {
	Values []float64 `yaml:"dbtn_to_credits"`
}

// defaultCredits is a representative ascending magnitude table spanning
// BTN 0 through 20 (double-BTN index 0 through 40); spec.md §6 specifies
// only that the table is "externally supplied" and ascending, not its
// exact values, so this default is a documented placeholder meant to be
// overridden by LoadCredits in any real deployment.
func defaultCredits() CreditsTable {
	values := make([]float64, 41)
	magnitude := 1.0
	for i := range values {
		values[i] = magnitude
		if i%2 == 1 {
			magnitude *= 2
		}
	}
	return CreditsTable{Values: values}
}

// DefaultCredits returns the built-in DBTN_TO_CREDITS table.
func DefaultCredits() CreditsTable {
	return defaultCredits()
}

// LoadCredits reads a DBTN_TO_CREDITS table from a YAML file, falling
// back to DefaultCredits if the file does not exist (grounded on
// config.LoadLoginServer's "load from file, fall back to defaults"
// pattern). A present-but-malformed or non-ascending file is an error.
func LoadCredits(path string) (CreditsTable, error) {
	cfg := defaultCredits()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("tables: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("tables: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c CreditsTable) validate() error {
	if len(c.Values) == 0 {
		return ErrEmptyCredits
	}
	for i := 1; i < len(c.Values); i++ {
		if c.Values[i] < c.Values[i-1] {
			return fmt.Errorf("tables: index %d (%.3f) < index %d (%.3f): %w",
				i, c.Values[i], i-1, c.Values[i-1], ErrNonAscending)
		}
	}
	return nil
}

// Lookup returns the credit magnitude for a double-BTN index, clamping
// to the table's last entry for any index beyond its range (a BTN far
// above the table's design ceiling still contributes the largest
// magnitude rather than panicking or returning zero).
func (c CreditsTable) Lookup(doubleBTN int) float64 {
	if doubleBTN < 0 {
		return c.Values[0]
	}
	if doubleBTN >= len(c.Values) {
		return c.Values[len(c.Values)-1]
	}
	return c.Values[doubleBTN]
}
