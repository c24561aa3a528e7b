package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cleared-dev/boaparser/internal/model"
)

// Stats describes how the lines of a statement were handled.
type Stats struct {
	Lines   int // total lines examined
	Blank   int // empty after trimming
	Skipped int // non-blank lines that were not transactions
	Parsed  int
}

// Extract returns every transaction line in raw, in source order.
// Lines that are not transactions are skipped.
func Extract(raw string) []model.Transaction {
	txns, _ := ExtractWithStats(raw)
	return txns
}

// ExtractWithStats is Extract plus a tally of the lines it saw.
func ExtractWithStats(raw string) ([]model.Transaction, Stats) {
	var (
		txns  []model.Transaction
		stats Stats
	)
	for _, line := range strings.Split(raw, "\n") {
		stats.Lines++
		if strings.TrimSpace(line) == "" {
			stats.Blank++
			continue
		}
		txn, ok := ParseLine(line)
		if !ok {
			stats.Skipped++
			continue
		}
		txns = append(txns, txn)
	}
	stats.Parsed = len(txns)
	return txns, stats
}

// Read loads the whole statement from r and extracts its transactions.
func Read(r io.Reader) ([]model.Transaction, Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading statement: %w", err)
	}
	txns, stats := ExtractWithStats(string(data))
	return txns, stats, nil
}

// ReadFile opens the statement at path and extracts its transactions.
func ReadFile(path string) ([]model.Transaction, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, stats, err := Read(f)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", path, err)
	}
	return txns, stats, nil
}
