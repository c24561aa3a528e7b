package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/boaparser/internal/model"
)

const boaDateFormat = "01/02/2006"

// boaLine matches a statement transaction line:
//
//	01/05/2016  PAYROLL ACME CORP DES:PAYROLL   1,234.56   5,432.10
//
// The description is greedy, so the two-space run before the change amount
// is what separates it from descriptions that contain numbers.
var boaLine = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+)\s\s([-.,\d]+)\s+([\d,.]+)`)

const (
	boaGroupDate = 1 + iota
	boaGroupDesc
	boaGroupChange
	boaGroupBalance
)

// ParseLine attempts to read a single statement line as a transaction.
// It returns false for headers, blank lines, and anything with an invalid
// date or amount.
func ParseLine(line string) (model.Transaction, bool) {
	m := boaLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.Transaction{}, false
	}

	date, err := time.Parse(boaDateFormat, m[boaGroupDate])
	if err != nil {
		return model.Transaction{}, false
	}

	desc := strings.TrimSpace(m[boaGroupDesc])
	if desc == "" {
		return model.Transaction{}, false
	}

	change, ok := parseAmount(m[boaGroupChange])
	if !ok {
		return model.Transaction{}, false
	}

	balance, ok := parseAmount(m[boaGroupBalance])
	if !ok {
		return model.Transaction{}, false
	}

	return model.Transaction{
		Date:        date,
		Description: desc,
		Change:      change,
		Balance:     balance,
	}, true
}

// parseAmount strips thousands separators before conversion.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
