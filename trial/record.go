package trial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Columns is the results-table header. Order and names are the
// compatibility contract with every consumer of the table.
var Columns = []string{
	"trial",
	"map_size",
	"obstacle_density",
	"map_type",
	"algorithm",
	"nodes_explored",
	"path_length",
	"time_ms",
	"found_path",
	"seed",
}

// ErrBadRow indicates a table row that does not decode into a Record.
var ErrBadRow = errors.New("trial: malformed record row")

// Record is one row of the results table. Map type and algorithm are kept
// as names so tables written by other tools still load.
type Record struct {
	Trial           int     `yaml:"trial"`
	MapSize         int     `yaml:"map_size"`
	ObstacleDensity float64 `yaml:"obstacle_density"`
	MapType         string  `yaml:"map_type"`
	Algorithm       string  `yaml:"algorithm"`
	NodesExplored   int     `yaml:"nodes_explored"`
	PathLength      int     `yaml:"path_length"`
	TimeMS          float64 `yaml:"time_ms"`
	FoundPath       bool    `yaml:"found_path"`
	Seed            int64   `yaml:"seed"`
}

// Row encodes r in Columns order. Booleans are written as True/False.
func (r Record) Row() []string {
	found := "False"
	if r.FoundPath {
		found = "True"
	}
	return []string{
		strconv.Itoa(r.Trial),
		strconv.Itoa(r.MapSize),
		strconv.FormatFloat(r.ObstacleDensity, 'f', -1, 64),
		r.MapType,
		r.Algorithm,
		strconv.Itoa(r.NodesExplored),
		strconv.Itoa(r.PathLength),
		strconv.FormatFloat(r.TimeMS, 'f', -1, 64),
		found,
		strconv.FormatInt(r.Seed, 10),
	}
}

// ParseRow decodes fields in Columns order. Booleans accept any form
// strconv.ParseBool accepts (True, false, 1, ...).
func ParseRow(fields []string) (Record, error) {
	if len(fields) != len(Columns) {
		return Record{}, fmt.Errorf("ParseRow: %d fields, want %d: %w", len(fields), len(Columns), ErrBadRow)
	}
	var (
		r   Record
		err error
	)
	col := func(i int) string { return strings.TrimSpace(fields[i]) }
	wrap := func(i int, e error) error {
		return fmt.Errorf("ParseRow: %s=%q: %v: %w", Columns[i], fields[i], e, ErrBadRow)
	}

	if r.Trial, err = strconv.Atoi(col(0)); err != nil {
		return Record{}, wrap(0, err)
	}
	if r.MapSize, err = strconv.Atoi(col(1)); err != nil {
		return Record{}, wrap(1, err)
	}
	if r.ObstacleDensity, err = strconv.ParseFloat(col(2), 64); err != nil {
		return Record{}, wrap(2, err)
	}
	r.MapType = col(3)
	r.Algorithm = col(4)
	if r.NodesExplored, err = strconv.Atoi(col(5)); err != nil {
		return Record{}, wrap(5, err)
	}
	if r.PathLength, err = strconv.Atoi(col(6)); err != nil {
		return Record{}, wrap(6, err)
	}
	if r.TimeMS, err = strconv.ParseFloat(col(7), 64); err != nil {
		return Record{}, wrap(7, err)
	}
	if r.FoundPath, err = strconv.ParseBool(col(8)); err != nil {
		return Record{}, wrap(8, err)
	}
	if r.Seed, err = strconv.ParseInt(col(9), 10, 64); err != nil {
		return Record{}, wrap(9, err)
	}
	return r, nil
}
