package console

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury-simulator/internal/models"
	"treasury-simulator/internal/service"
	"treasury-simulator/pkg/logger"
)

func newTestUI(t *testing.T, input string) (*UI, *service.TreasuryService, *bytes.Buffer) {
	t.Helper()

	svc := service.NewTreasuryService(
		service.DefaultAccounts(),
		service.DefaultRates(),
		service.TreasuryConfig{
			NoticeTTL:              time.Minute,
			Workers:                1,
			QueueSize:              10,
			LargeTransferThreshold: decimal.NewFromInt(30000),
		},
		service.TreasuryDeps{},
		logger.NewDiscard(),
	)
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })

	var out bytes.Buffer
	return NewUI(svc, bufio.NewReader(strings.NewReader(input)), &out), svc, &out
}

func TestUI_Run_TransferAndLog(t *testing.T) {
	ui, svc, out := newTestUI(t, "transfer acc1 acc4 1300 2025-07-01 Q3 payroll\nlog\nquit\nrates\n")

	ui.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Mpesa_KES_1")
	assert.Contains(t, text, "Performing FX conversion: 1300 KES to 10.00 USD (Rate: 0.0077)")
	assert.Contains(t, text, "Transfer successful!")
	assert.Contains(t, text, "498700.00 KES")
	assert.Contains(t, text, "Q3 payroll")
	assert.Contains(t, text, "2025-07-01")
	// после quit команды не выполняются
	assert.NotContains(t, text, "USD -> KES")

	txs := svc.Transactions(models.LedgerFilter{})
	require.Len(t, txs, 1)
	assert.Equal(t, "Q3 payroll", txs[0].Note)
	assert.Equal(t, "2025-07-01", txs[0].TransferDate)
}

func TestUI_Execute_TransferErrors(t *testing.T) {
	ui, svc, out := newTestUI(t, "")
	ctx := context.Background()

	ui.Execute(ctx, "transfer acc1 acc1 10")
	ui.Execute(ctx, "transfer acc1 acc4 600000")
	ui.Execute(ctx, "transfer acc1")

	text := out.String()
	assert.Contains(t, text, "Error: Source and destination accounts cannot be the same.")
	assert.Contains(t, text, "Error: Insufficient balance in Mpesa_KES_1. Available: 500000 KES")
	assert.Contains(t, text, "Usage: transfer")
	assert.Empty(t, svc.Transactions(models.LedgerFilter{}))
}

func TestUI_Execute_NoteWithoutDate(t *testing.T) {
	ui, svc, _ := newTestUI(t, "")

	ui.Execute(context.Background(), "t acc2 acc3 5 rent july")

	txs := svc.Transactions(models.LedgerFilter{})
	require.Len(t, txs, 1)
	assert.Equal(t, "rent july", txs[0].Note)
	assert.NotEmpty(t, txs[0].TransferDate)
}

func TestUI_Execute_Filter(t *testing.T) {
	ui, _, out := newTestUI(t, "")
	ctx := context.Background()

	ui.Execute(ctx, "transfer acc2 acc3 5 kes-only")
	ui.Execute(ctx, "transfer acc7 acc8 5 ngn-only")

	out.Reset()
	ui.Execute(ctx, "filter currency ngn")
	text := out.String()
	assert.Contains(t, text, "Filter: currency=NGN")
	assert.Contains(t, text, "ngn-only")
	assert.NotContains(t, text, "kes-only")

	out.Reset()
	ui.Execute(ctx, "filter account acc3")
	assert.Contains(t, out.String(), "No transactions.")

	out.Reset()
	ui.Execute(ctx, "filter currency EUR")
	assert.Contains(t, out.String(), "unsupported currency")

	out.Reset()
	ui.Execute(ctx, "filter account missing")
	assert.Contains(t, out.String(), "Error:")

	out.Reset()
	ui.Execute(ctx, "filter reset")
	ui.Execute(ctx, "log")
	text = out.String()
	assert.Contains(t, text, "kes-only")
	assert.Contains(t, text, "ngn-only")
}

func TestUI_Execute_Rename(t *testing.T) {
	ui, svc, out := newTestUI(t, "")
	ctx := context.Background()

	assert.True(t, ui.Execute(ctx, "rename acc1 Main Float"))
	assert.Contains(t, out.String(), "Account acc1 renamed to Main Float.")

	acc, err := svc.Account("acc1")
	require.NoError(t, err)
	assert.Equal(t, "Main Float", acc.Name)
}

func TestUI_Execute_UnknownAndQuit(t *testing.T) {
	ui, _, out := newTestUI(t, "")
	ctx := context.Background()

	assert.True(t, ui.Execute(ctx, "bogus"))
	assert.Contains(t, out.String(), `Unknown command "bogus"`)
	assert.True(t, ui.Execute(ctx, "help"))
	assert.False(t, ui.Execute(ctx, "quit"))
}

func TestUI_Run_ReturnsOnCancelWhileWaitingForInput(t *testing.T) {
	ui, _, out := newTestUI(t, "")
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ui.in = bufio.NewReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		ui.Run(ctx)
		close(finished)
	}()

	_, err := pw.Write([]byte("help\n"))
	require.NoError(t, err)

	cancel()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run не вернулся после отмены контекста")
	}
	assert.Contains(t, out.String(), "Treasury Movement Simulator")
}

func TestUI_Run_StopsAtEndOfInput(t *testing.T) {
	ui, svc, _ := newTestUI(t, "transfer acc2 acc3 5 last line without newline")

	finished := make(chan struct{})
	go func() {
		ui.Run(context.Background())
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run не вернулся на конце ввода")
	}
	txs := svc.Transactions(models.LedgerFilter{})
	require.Len(t, txs, 1)
	assert.Equal(t, "last line without newline", txs[0].Note)
}

func TestUI_Execute_LogShowsRateOnlyForConversions(t *testing.T) {
	ui, _, out := newTestUI(t, "")
	ctx := context.Background()

	ui.Execute(ctx, "transfer acc2 acc3 5 same-currency")
	ui.Execute(ctx, "transfer acc1 acc4 1300 conversion")

	out.Reset()
	ui.Execute(ctx, "log")

	var sameLine, fxLine string
	for _, line := range strings.Split(out.String(), "\n") {
		switch {
		case strings.Contains(line, "same-currency"):
			sameLine = line
		case strings.Contains(line, "conversion"):
			fxLine = line
		}
	}
	require.NotEmpty(t, sameLine)
	require.NotEmpty(t, fxLine)
	assert.Contains(t, sameLine, " - ")
	assert.NotContains(t, sameLine, "0.0077")
	assert.Contains(t, fxLine, "0.0077")
	assert.Contains(t, fxLine, "10.00 USD")
}
