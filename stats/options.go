package stats

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathbench/trial"
)

// NoPathPolicy decides how runs that found no path enter the statistics.
type NoPathPolicy int

const (
	// Keep uses the rows as recorded (path_length 0).
	Keep NoPathPolicy = iota
	// Exclude drops every row with found_path=false.
	Exclude
	// Penalize keeps the rows but sets path_length to map_size².
	Penalize
)

var policyNames = [...]string{
	Keep:     "keep",
	Exclude:  "exclude",
	Penalize: "penalize",
}

// String returns the policy name.
func (p NoPathPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("NoPathPolicy(%d)", int(p))
	}
	return policyNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p NoPathPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *NoPathPolicy) UnmarshalText(b []byte) error {
	v, err := ParseNoPathPolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseNoPathPolicy resolves keep, exclude or penalize.
func ParseNoPathPolicy(name string) (NoPathPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range policyNames {
		if n == key {
			return NoPathPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("ParseNoPathPolicy(%q): %w", name, ErrUnknownPolicy)
}

// apply rewrites or filters records per the policy. Input is not modified.
func (p NoPathPolicy) apply(in []trial.Record) []trial.Record {
	out := make([]trial.Record, 0, len(in))
	for _, r := range in {
		if !r.FoundPath {
			switch p {
			case Exclude:
				continue
			case Penalize:
				r.PathLength = r.MapSize * r.MapSize
			}
		}
		out = append(out, r)
	}
	return out
}

// significanceLevel is the family-wise α before any correction.
const significanceLevel = 0.05

type config struct {
	policy NoPathPolicy
}

// Option configures an Analyzer.
type Option func(*config)

// WithNoPathPolicy selects how found_path=false rows are treated.
// Panics on an unknown policy value.
func WithNoPathPolicy(p NoPathPolicy) Option {
	if p < 0 || int(p) >= len(policyNames) {
		panic(fmt.Sprintf("stats: WithNoPathPolicy(%d): unknown policy", int(p)))
	}
	return func(c *config) { c.policy = p }
}
