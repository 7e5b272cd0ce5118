package biosched

import (
	"fmt"

	"github.com/cbarrick-labs/biosched/model"
)

// ConfigError reports a problem with user-supplied configuration data
// detected before any search begins (spec.md §7): missing columns,
// non-contiguous periods, negative durations/quantities, an empty
// product set, or an unknown objective/constraint name. Surfaced
// immediately; no run is started.
type ConfigError = model.ConfigError

// knownAccumulators is the full vocabulary of raw simulator
// accumulator names an objective or constraint may reference (spec.md
// §4.4, §7 "unknown objective/constraint name").
var knownAccumulators = map[string]bool{
	"total_kg_throughput":        true,
	"total_kg_inventory_deficit": true,
	"total_kg_backlog":           true,
	"total_kg_waste":             true,
	"total_profit":               true,
	"total_backlog_penalty":      true,
	"total_storage_cost":         true,
	"total_waste_cost":           true,
	"total_changeover_cost":      true,
}

func validateAccumulatorName(field, name string) error {
	if !knownAccumulators[name] {
		return &model.ConfigError{Field: field, Reason: fmt.Sprintf("unknown objective/constraint name %q", name)}
	}
	return nil
}
