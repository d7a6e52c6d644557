package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
	"treasury-simulator/internal/custom_err"
	"treasury-simulator/internal/models"
	"treasury-simulator/internal/service"

	"github.com/olekukonko/tablewriter"
)

const dateLayout = "2006-01-02"

type UI struct {
	treasury service.Treasury
	in       *bufio.Reader
	out      io.Writer
	filter   models.LedgerFilter
}

func NewUI(treasury service.Treasury, in *bufio.Reader, out io.Writer) *UI {
	return &UI{treasury: treasury, in: in, out: out}
}

// Run читает команды до quit, конца ввода или отмены ctx
func (ui *UI) Run(ctx context.Context) {
	fmt.Fprintln(ui.out, "Treasury Movement Simulator. Type 'help' for commands.")
	ui.showAccounts()

	done := make(chan struct{})
	defer close(done)
	lines := ui.readLines(done)

	for {
		fmt.Fprint(ui.out, "\n> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(ui.out)
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if line != "" && !ui.Execute(ctx, line) {
				return
			}
		}
	}
}

// readLines читает ввод в отдельной горутине, чтобы Run не зависал в ReadString.
// Канал закрывается на конце ввода.
func (ui *UI) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := ui.in.ReadString('\n')
			line = strings.TrimSpace(line)
			if line != "" || err == nil {
				select {
				case lines <- line:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// Execute выполняет одну команду; false означает выход
func (ui *UI) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "accounts", "a":
		ui.showAccounts()
	case "rates", "r":
		ui.showRates()
	case "transfer", "t":
		ui.transfer(ctx, fields[1:])
	case "log", "l":
		ui.showLog()
	case "filter", "f":
		ui.setFilter(fields[1:])
	case "rename":
		ui.rename(ctx, fields[1:])
	case "help", "h", "?":
		ui.help()
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(ui.out, "Unknown command %q. Type 'help'.\n", fields[0])
	}
	return true
}

func (ui *UI) help() {
	fmt.Fprintln(ui.out, "Commands:")
	fmt.Fprintln(ui.out, "  accounts                              accounts overview")
	fmt.Fprintln(ui.out, "  rates                                 exchange rate table")
	fmt.Fprintln(ui.out, "  transfer FROM TO AMOUNT [DATE] [NOTE] move funds, DATE is YYYY-MM-DD")
	fmt.Fprintln(ui.out, "  log                                   transaction log with current filter")
	fmt.Fprintln(ui.out, "  filter account ID | currency CUR | reset")
	fmt.Fprintln(ui.out, "  rename ID NAME                        change account display name")
	fmt.Fprintln(ui.out, "  quit")
}

func (ui *UI) showAccounts() {
	table := ui.newTable([]string{"ID", "Name", "Currency", "Balance"})
	for _, a := range ui.treasury.Accounts() {
		table.Append([]string{a.ID, a.Name, string(a.Currency), a.Balance.StringFixed(2)})
	}
	table.Render()
}

func (ui *UI) showRates() {
	rates := ui.treasury.Rates()
	keys := make([]string, 0, len(rates))
	for k := range rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := ui.newTable([]string{"Pair", "Rate"})
	for _, k := range keys {
		table.Append([]string{strings.Replace(k, "_", " -> ", 1), rates[k].Value().StringFixed(4)})
	}
	table.Render()
}

func (ui *UI) transfer(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(ui.out, "Usage: transfer FROM TO AMOUNT [DATE] [NOTE...]")
		return
	}

	in := models.TransferInput{
		FromAccountID: args[0],
		ToAccountID:   args[1],
		Amount:        args[2],
	}
	rest := args[3:]
	if len(rest) > 0 {
		if _, err := time.Parse(dateLayout, rest[0]); err == nil {
			in.TransferDate = rest[0]
			rest = rest[1:]
		}
	}
	in.Note = strings.Join(rest, " ")

	res, err := ui.treasury.Transfer(ctx, in)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", custom_err.UserMessage(err))
		return
	}

	if res.FxMessage != "" {
		fmt.Fprintln(ui.out, res.FxMessage)
	}
	fmt.Fprintln(ui.out, res.Message)
	fmt.Fprintf(ui.out, "%s: %s %s | %s: %s %s\n",
		res.From.Name, res.From.Balance.StringFixed(2), res.From.Currency,
		res.To.Name, res.To.Balance.StringFixed(2), res.To.Currency)
}

func (ui *UI) showLog() {
	txs := ui.treasury.Transactions(ui.filter)
	if desc := ui.describeFilter(); desc != "" {
		fmt.Fprintln(ui.out, "Filter:", desc)
	}
	if len(txs) == 0 {
		fmt.Fprintln(ui.out, "No transactions.")
		return
	}

	table := ui.newTable([]string{"#", "Date", "From", "To", "Amount", "FX Rate", "Credited", "Note"})
	for _, tx := range txs {
		rate := "-"
		if tx.IsCrossCurrency() {
			rate = tx.FxRate.StringFixed(4)
		}
		table.Append([]string{
			fmt.Sprint(tx.ID),
			tx.TransferDate,
			tx.FromAccountName,
			tx.ToAccountName,
			tx.Amount.StringFixed(2) + " " + string(tx.Currency),
			rate,
			tx.CreditedAmount().StringFixed(2) + " " + string(tx.ToCurrency),
			tx.Note,
		})
	}
	table.Render()
}

func (ui *UI) setFilter(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(ui.out, "Usage: filter account ID | currency CUR | reset")
		return
	}

	switch strings.ToLower(args[0]) {
	case "reset":
		ui.filter = models.LedgerFilter{}
		fmt.Fprintln(ui.out, "Filter cleared.")
		return
	case "account":
		if len(args) < 2 {
			fmt.Fprintln(ui.out, "Usage: filter account ID")
			return
		}
		if strings.EqualFold(args[1], "all") {
			ui.filter.AccountID = ""
		} else if _, err := ui.treasury.Account(args[1]); err != nil {
			fmt.Fprintln(ui.out, "Error:", custom_err.UserMessage(err))
			return
		} else {
			ui.filter.AccountID = args[1]
		}
	case "currency":
		if len(args) < 2 {
			fmt.Fprintln(ui.out, "Usage: filter currency CUR")
			return
		}
		cur := models.Currency(strings.ToUpper(args[1]))
		switch {
		case cur == "ALL":
			ui.filter.Currency = ""
		case !cur.IsValid():
			fmt.Fprintf(ui.out, "Error: unsupported currency %s.\n", args[1])
			return
		default:
			ui.filter.Currency = cur
		}
	default:
		fmt.Fprintln(ui.out, "Usage: filter account ID | currency CUR | reset")
		return
	}
	ui.showLog()
}

func (ui *UI) describeFilter() string {
	var parts []string
	if ui.filter.AccountID != "" {
		parts = append(parts, "account="+ui.filter.AccountID)
	}
	if ui.filter.Currency != "" {
		parts = append(parts, "currency="+string(ui.filter.Currency))
	}
	return strings.Join(parts, " ")
}

func (ui *UI) rename(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(ui.out, "Usage: rename ID NAME")
		return
	}

	acc, err := ui.treasury.RenameAccount(ctx, args[0], models.RenameAccountRequest{Name: strings.Join(args[1:], " ")})
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", custom_err.UserMessage(err))
		return
	}
	fmt.Fprintf(ui.out, "Account %s renamed to %s.\n", acc.ID, acc.Name)
}

func (ui *UI) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(ui.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
