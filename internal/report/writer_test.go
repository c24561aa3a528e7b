package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/boaparser/internal/model"
)

func TestWriteGroup(t *testing.T) {
	var buf bytes.Buffer
	g := Group{Name: GroupWithdrawals, Transactions: Withdrawals(sample(), Options{HideTransfers: true})}
	require.NoError(t, WriteGroup(&buf, g))

	want := strings.Join([]string{
		"Summary: Withdrawals [2]",
		"Total: -154.33",
		"Largest: -4.75",
		"Smallest: -149.58",
		"[2016-01-02] - [-4.75] - COFFEE",
		"[2016-01-06] - [-149.58] - GROCERIES",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteGroup_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGroup(&buf, Group{Name: GroupDeposits}))
	assert.Equal(t, "Summary: Deposits [0]\nTotal: 0\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteGroup_WriterError(t *testing.T) {
	err := WriteGroup(failingWriter{}, Group{Name: GroupDeposits})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteJSON(t *testing.T) {
	txns := []model.Transaction{
		txn(5, "COFFEE & TEA", "-4.75"),
		txn(1, "PAYROLL", "3200.00"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, txns))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "[\n    {\n        \"date\""), "four-space indent: %q", out)
	assert.True(t, strings.HasSuffix(out, "]\n"))
	assert.Contains(t, out, `"description": "COFFEE & TEA"`)
	assert.NotContains(t, out, `\u0026`)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	// Order is preserved, dates are strings, amounts are numbers.
	assert.Equal(t, "2016-01-05", decoded[0]["date"])
	assert.Equal(t, "2016-01-01", decoded[1]["date"])
	assert.InDelta(t, -4.75, decoded[0]["change"], 0.0001)
	assert.InDelta(t, 3200.0, decoded[1]["change"], 0.0001)
	assert.InDelta(t, 1000.0, decoded[1]["balance"], 0.0001)

	var back []model.Transaction
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 2)
	assert.Equal(t, txns[0].Date, back[0].Date)
	assert.True(t, txns[1].Change.Equal(back[1].Change))
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	err := Run(&buf, sample(), Options{ShowDeposits: true, ShowWithdrawals: true, HideTransfers: true, EmitJSON: true})
	require.NoError(t, err)
	out := buf.String()

	deposits := strings.Index(out, "Summary: Deposits [2]")
	withdrawals := strings.Index(out, "Summary: Withdrawals [2]")
	jsonStart := strings.Index(out, "[\n")
	require.NotEqual(t, -1, deposits)
	require.NotEqual(t, -1, withdrawals)
	require.NotEqual(t, -1, jsonStart)
	assert.Less(t, deposits, withdrawals)
	assert.Less(t, withdrawals, jsonStart)

	// The JSON document is unfiltered.
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out[jsonStart:]), &decoded))
	assert.Len(t, decoded, len(sample()))
}

func TestRun_NothingSelected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, sample(), Options{}))
	assert.Empty(t, buf.String())
}
