package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/boaparser/internal/model"
)

// TransferMarker identifies transfers between the account holder's own accounts.
const TransferMarker = "Online Banking transfer"

// Group names as printed in summaries.
const (
	GroupDeposits    = "Deposits"
	GroupWithdrawals = "Withdrawals"
)

// Options selects which groups are reported and how.
type Options struct {
	ShowWithdrawals bool
	ShowDeposits    bool
	HideTransfers   bool
	EmitJSON        bool
}

// Group is a named, filtered subset of a statement's transactions.
type Group struct {
	Name         string
	Transactions []model.Transaction
}

// Summary holds aggregate figures for a group. Largest and Smallest are only
// meaningful when HasExtrema reports true.
type Summary struct {
	Name     string
	Count    int
	Total    decimal.Decimal
	Largest  decimal.Decimal
	Smallest decimal.Decimal
}

// HasExtrema reports whether Largest and Smallest were computed.
func (s Summary) HasExtrema() bool { return s.Count > 0 }

// IsTransfer reports whether txn looks like an internal transfer.
func IsTransfer(txn model.Transaction) bool {
	return strings.Contains(txn.Description, TransferMarker)
}

// Filter returns the transactions that survive the transfer filter.
func Filter(txns []model.Transaction, opts Options) []model.Transaction {
	if !opts.HideTransfers {
		return txns
	}
	return selectTxns(txns, func(txn model.Transaction) bool { return !IsTransfer(txn) })
}

// Withdrawals returns transactions with a negative change, in statement order.
func Withdrawals(txns []model.Transaction, opts Options) []model.Transaction {
	return selectTxns(Filter(txns, opts), model.Transaction.IsWithdrawal)
}

// Deposits returns transactions with a positive change, in statement order.
func Deposits(txns []model.Transaction, opts Options) []model.Transaction {
	return selectTxns(Filter(txns, opts), model.Transaction.IsDeposit)
}

func selectTxns(txns []model.Transaction, pred func(model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if pred(txn) {
			out = append(out, txn)
		}
	}
	return out
}

// Groups returns the groups enabled in opts, deposits first.
func Groups(txns []model.Transaction, opts Options) []Group {
	var groups []Group
	if opts.ShowDeposits {
		groups = append(groups, Group{Name: GroupDeposits, Transactions: Deposits(txns, opts)})
	}
	if opts.ShowWithdrawals {
		groups = append(groups, Group{Name: GroupWithdrawals, Transactions: Withdrawals(txns, opts)})
	}
	return groups
}

// Summarize computes count, total, largest and smallest change for a group.
// An empty group yields a zero count and zero total with no extrema.
func Summarize(g Group) Summary {
	s := Summary{Name: g.Name, Count: len(g.Transactions), Total: decimal.Zero}
	for i, txn := range g.Transactions {
		s.Total = s.Total.Add(txn.Change)
		if i == 0 || txn.Change.GreaterThan(s.Largest) {
			s.Largest = txn.Change
		}
		if i == 0 || txn.Change.LessThan(s.Smallest) {
			s.Smallest = txn.Change
		}
	}
	return s
}
