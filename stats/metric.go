package stats

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathbench/trial"
)

// Metric selects one numeric result column.
type Metric int

const (
	// TimeMS is the elapsed wall-clock time in milliseconds.
	TimeMS Metric = iota
	// NodesExplored is the number of finalized positions.
	NodesExplored
	// PathLength is the number of cells on the found path.
	PathLength
)

// Metrics lists every metric in report order.
var Metrics = []Metric{TimeMS, NodesExplored, PathLength}

var metricNames = [...]string{
	TimeMS:        "time_ms",
	NodesExplored: "nodes_explored",
	PathLength:    "path_length",
}

// String returns the column name.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric resolves a column name case-insensitively.
func ParseMetric(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricNames {
		if n == key {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(b []byte) error {
	v, err := ParseMetric(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Metric) valid() bool { return m >= 0 && int(m) < len(metricNames) }

// value extracts the metric from r.
func (m Metric) value(r trial.Record) float64 {
	switch m {
	case NodesExplored:
		return float64(r.NodesExplored)
	case PathLength:
		return float64(r.PathLength)
	default:
		return r.TimeMS
	}
}
