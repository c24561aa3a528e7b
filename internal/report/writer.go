package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleared-dev/boaparser/internal/model"
)

const jsonIndent = "    "

// WriteGroup prints the summary of g followed by one line per transaction.
func WriteGroup(w io.Writer, g Group) error {
	s := Summarize(g)
	if _, err := fmt.Fprintf(w, "Summary: %s [%d]\nTotal: %s\n", s.Name, s.Count, s.Total); err != nil {
		return fmt.Errorf("writing %s summary: %w", s.Name, err)
	}
	if s.HasExtrema() {
		if _, err := fmt.Fprintf(w, "Largest: %s\nSmallest: %s\n", s.Largest, s.Smallest); err != nil {
			return fmt.Errorf("writing %s summary: %w", s.Name, err)
		}
	}

	for i, txn := range g.Transactions {
		if _, err := fmt.Fprintf(w, "[%s] - [%s] - %s\n", txn.Date.Format(model.DateFormat), txn.Change, txn.Description); err != nil {
			return fmt.Errorf("writing %s row %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// WriteJSON writes txns as an indented JSON array.
func WriteJSON(w io.Writer, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(txns); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Run writes every group selected by opts, then the full JSON document
// when requested. The JSON output is never filtered.
func Run(w io.Writer, txns []model.Transaction, opts Options) error {
	for _, g := range Groups(txns, opts) {
		if err := WriteGroup(w, g); err != nil {
			return err
		}
	}
	if opts.EmitJSON {
		return WriteJSON(w, txns)
	}
	return nil
}
