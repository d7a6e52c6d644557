package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"treasury-simulator/internal/custom_err"
	"treasury-simulator/internal/kafka"
	"treasury-simulator/internal/models"
	"treasury-simulator/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transferDateLayout = "2006-01-02"

type Treasury interface {
	SessionID() uuid.UUID
	Accounts() []models.Account
	Account(id string) (models.Account, error)
	RenameAccount(ctx context.Context, id string, req models.RenameAccountRequest) (models.Account, error)
	Rates() models.RateTable
	Transfer(ctx context.Context, in models.TransferInput) (*models.TransferResult, error)
	Transactions(filter models.LedgerFilter) []models.Transaction
	Journal(ctx context.Context) ([]models.JournalEntry, error)
	Notice() models.NoticeResponse
}

type TreasuryConfig struct {
	NoticeTTL              time.Duration
	Workers                int
	QueueSize              int
	LargeTransferThreshold decimal.Decimal
}

// TreasuryDeps внешние приемники событий. JournalRepo == nil отключает журнал.
type TreasuryDeps struct {
	JournalRepo   postgres.JournalRepository
	TxManager     TxManager
	KafkaProducer kafka.Producer
}

// TreasuryService владеет всем состоянием сессии: счетами, журналом и курсами.
// Состояние меняется только через Transfer и RenameAccount.
type TreasuryService struct {
	mu        sync.RWMutex
	accounts  []*models.Account
	index     map[string]*models.Account
	ledger    []models.Transaction
	rates     models.RateTable
	nextTxID  int64
	sessionID uuid.UUID

	notice         *Notice
	validate       *validator.Validate
	now            func() time.Time
	largeThreshold decimal.Decimal

	journalRepo   postgres.JournalRepository
	txManager     TxManager
	kafkaProducer kafka.Producer

	log *slog.Logger

	eventQueue chan models.TransferEvent
	wg         sync.WaitGroup
	stopCh     chan struct{}
	stopOnce   sync.Once
}

func NewTreasuryService(
	accounts []models.Account,
	rates models.RateTable,
	cfg TreasuryConfig,
	deps TreasuryDeps,
	log *slog.Logger,
) *TreasuryService {
	svc := newTreasuryState(accounts, rates, log)
	svc.notice = NewNotice(cfg.NoticeTTL)
	svc.largeThreshold = cfg.LargeTransferThreshold
	svc.journalRepo = deps.JournalRepo
	svc.txManager = deps.TxManager
	svc.kafkaProducer = deps.KafkaProducer
	if svc.kafkaProducer == nil {
		svc.kafkaProducer = kafka.NewNoOpProducer(log)
	}
	svc.eventQueue = make(chan models.TransferEvent, cfg.QueueSize)
	svc.stopCh = make(chan struct{})

	for i := 0; i < cfg.Workers; i++ {
		svc.wg.Add(1)
		go svc.eventWorker(i)
	}

	log.Info("treasury session started",
		slog.String("session_id", svc.sessionID.String()),
		slog.Int("accounts", len(svc.accounts)),
		slog.Int("rates", len(svc.rates)),
		slog.Bool("journal", svc.journalRepo != nil))

	return svc
}

// newTreasuryState собирает состояние без воркеров и приемников
func newTreasuryState(accounts []models.Account, rates models.RateTable, log *slog.Logger) *TreasuryService {
	svc := &TreasuryService{
		accounts:  make([]*models.Account, 0, len(accounts)),
		index:     make(map[string]*models.Account, len(accounts)),
		rates:     rates.Clone(),
		sessionID: uuid.New(),
		validate:  validator.New(),
		now:       time.Now,
		log:       log,
	}
	for _, a := range accounts {
		acc := a
		svc.accounts = append(svc.accounts, &acc)
		svc.index[acc.ID] = &acc
	}
	svc.sortAccounts()
	return svc
}

func (s *TreasuryService) sortAccounts() {
	slices.SortStableFunc(s.accounts, func(a, b *models.Account) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func (s *TreasuryService) SessionID() uuid.UUID {
	return s.sessionID
}

func (s *TreasuryService) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, *a)
	}
	return out
}

func (s *TreasuryService) Account(id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.index[id]
	if !ok {
		return models.Account{}, custom_err.NewUserError(custom_err.ErrAccountNotFound, "Account %s not found.", id)
	}
	return *a, nil
}

// RenameAccount меняет только отображаемое имя; записи журнала хранят прежние имена
func (s *TreasuryService) RenameAccount(ctx context.Context, id string, req models.RenameAccountRequest) (models.Account, error) {
	const op = "service.RenameAccount"

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op,
			custom_err.NewUserError(custom_err.ErrInvalidInput, "Please enter a valid account name."))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.index[id]
	if !ok {
		return models.Account{}, fmt.Errorf("%s: %w", op,
			custom_err.NewUserError(custom_err.ErrAccountNotFound, "Account %s not found.", id))
	}

	old := a.Name
	a.Name = req.Name
	s.sortAccounts()

	s.log.Info("account renamed",
		slog.String("account_id", id),
		slog.String("old_name", old),
		slog.String("new_name", a.Name))

	return *a, nil
}

func (s *TreasuryService) Rates() models.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rates.Clone()
}

// Transactions возвращает снимок журнала с примененным фильтром
func (s *TreasuryService) Transactions(filter models.LedgerFilter) []models.Transaction {
	s.mu.RLock()
	snapshot := make([]models.Transaction, len(s.ledger))
	copy(snapshot, s.ledger)
	s.mu.RUnlock()

	return FilterTransactions(snapshot, filter)
}

func (s *TreasuryService) Notice() models.NoticeResponse {
	return s.notice.Current()
}

// Transfer проверяет запрос, списывает, зачисляет и добавляет запись в журнал.
// Все проверки выполняются до первого изменения состояния.
func (s *TreasuryService) Transfer(ctx context.Context, in models.TransferInput) (*models.TransferResult, error) {
	const op = "service.Transfer"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	result, err := s.transferLocked(in)
	s.mu.Unlock()

	if err != nil {
		s.notice.Show(custom_err.UserMessage(err), models.NoticeError)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notice.Show(result.Message, models.NoticeSuccess)

	tx := result.Transaction
	s.log.Info("перевод выполнен",
		slog.Int64("tx_id", tx.ID),
		slog.String("from", tx.FromAccountID),
		slog.String("to", tx.ToAccountID),
		slog.String("amount", tx.Amount.String()),
		slog.String("currency", string(tx.Currency)),
		slog.String("credited", tx.CreditedAmount().String()),
		slog.String("to_currency", string(tx.ToCurrency)))

	s.enqueue(models.TransferEvent{
		SessionID:   s.sessionID,
		Transaction: tx,
		Large:       s.isLarge(tx),
		Timestamp:   s.now(),
	})

	return result, nil
}

func (s *TreasuryService) transferLocked(in models.TransferInput) (*models.TransferResult, error) {
	from, okFrom := s.index[in.FromAccountID]
	to, okTo := s.index[in.ToAccountID]
	if !okFrom || !okTo {
		return nil, custom_err.NewUserError(custom_err.ErrAccountNotFound,
			"Please select both source and destination accounts.")
	}

	if from.ID == to.ID {
		return nil, custom_err.NewUserError(custom_err.ErrSameAccount,
			"Source and destination accounts cannot be the same.")
	}

	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, custom_err.NewUserError(custom_err.ErrInvalidAmount,
			"Please enter a valid positive amount.")
	}

	// в валюте счета-источника, без конвертации
	if from.Balance.LessThan(amount) {
		return nil, custom_err.NewUserError(custom_err.ErrInsufficientBalance,
			"Insufficient balance in %s. Available: %s %s", from.Name, from.Balance.String(), from.Currency)
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, custom_err.NewUserError(custom_err.ErrInvalidInput,
			"Invalid transfer details: %s", describeValidation(err))
	}

	credited := amount
	var (
		fxRate    *decimal.Decimal
		converted *decimal.Decimal
		fxMessage string
	)
	if from.Currency != to.Currency {
		rate, ok := s.rates.Rate(from.Currency, to.Currency)
		if !ok {
			return nil, custom_err.NewUserError(custom_err.ErrRateUnavailable,
				"FX rate not available for %s to %s.", from.Currency, to.Currency)
		}
		credited = rate.Apply(amount)
		rateValue := rate.Value()
		fxRate = &rateValue
		converted = &credited
		fxMessage = fmt.Sprintf("Performing FX conversion: %s %s to %s %s (Rate: %s)",
			amount.String(), from.Currency, credited.StringFixed(2), to.Currency, rateValue.StringFixed(4))
	}

	now := s.now()
	note := strings.TrimSpace(in.Note)
	if note == "" {
		note = "N/A"
	}
	transferDate := in.TransferDate
	if transferDate == "" {
		transferDate = now.Format(transferDateLayout)
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(credited)

	s.nextTxID++
	tx := models.Transaction{
		ID:              s.nextTxID,
		Timestamp:       now,
		FromAccountID:   from.ID,
		FromAccountName: from.Name,
		FromCurrency:    from.Currency,
		ToAccountID:     to.ID,
		ToAccountName:   to.Name,
		ToCurrency:      to.Currency,
		Amount:          amount,
		Currency:        from.Currency,
		Note:            note,
		FxRate:          fxRate,
		ConvertedAmount: converted,
		TransferDate:    transferDate,
	}
	s.ledger = append(s.ledger, tx)

	return &models.TransferResult{
		Message:     "Transfer successful!",
		FxMessage:   fxMessage,
		Transaction: tx,
		From:        *from,
		To:          *to,
	}, nil
}

const (
	maxAmountLength        = 64
	maxAmountScale         = 8
	maxAmountIntegerDigits = 15
)

// parseAmount принимает только положительное число целиком, не более
// maxAmountScale знаков после запятой и maxAmountIntegerDigits до нее.
// Границы проверяются по показателю и длине мантиссы, без арифметики.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	if len(raw) > maxAmountLength {
		return decimal.Zero, fmt.Errorf("amount longer than %d characters", maxAmountLength)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", raw)
	}
	exp := int64(amount.Exponent())
	if exp < -maxAmountScale {
		return decimal.Zero, fmt.Errorf("amount has more than %d decimal places", maxAmountScale)
	}
	if int64(amount.NumDigits())+exp > maxAmountIntegerDigits {
		return decimal.Zero, fmt.Errorf("amount exceeds %d integer digits", maxAmountIntegerDigits)
	}
	return amount, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Note":
			parts = append(parts, "note must be at most 256 characters")
		case "TransferDate":
			parts = append(parts, "transfer date must be YYYY-MM-DD")
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(parts, "; ")
}

func (s *TreasuryService) isLarge(tx models.Transaction) bool {
	if tx.Amount.GreaterThanOrEqual(s.largeThreshold) {
		return true
	}
	return tx.ConvertedAmount != nil && tx.ConvertedAmount.GreaterThanOrEqual(s.largeThreshold)
}

func (s *TreasuryService) enqueue(event models.TransferEvent) {
	select {
	case s.eventQueue <- event:
		s.log.Debug("событие о переводе добавлено в очередь", slog.Int64("tx_id", event.Transaction.ID))
	default:
		s.log.Error("очередь событий переполнена, событие отброшено",
			slog.Int64("tx_id", event.Transaction.ID),
			slog.String("amount", event.Transaction.Amount.String()))
	}
}

func (s *TreasuryService) eventWorker(id int) {
	defer s.wg.Done()
	s.log.Debug("event worker started", slog.Int("worker_id", id))

	for {
		select {
		case event := <-s.eventQueue:
			s.dispatch(id, event)

		case <-s.stopCh:
			for {
				select {
				case event := <-s.eventQueue:
					s.dispatch(id, event)
				default:
					s.log.Debug("event worker stopping", slog.Int("worker_id", id))
					return
				}
			}
		}
	}
}

func (s *TreasuryService) dispatch(workerID int, event models.TransferEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.handleEvent(ctx, event); err != nil {
		s.log.Error("transfer event failed",
			slog.Int("worker_id", workerID),
			slog.String("event_key", event.EventKey()),
			slog.String("error", err.Error()))
	}
}

// handleEvent пишет событие в журнал и публикует крупные переводы в kafka
func (s *TreasuryService) handleEvent(ctx context.Context, event models.TransferEvent) error {
	const op = "service.handleEvent"

	if s.journalRepo != nil {
		err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			exists, err := s.journalRepo.TransferExistsTx(ctx, tx, event.SessionID, event.Transaction.ID)
			if err != nil {
				return fmt.Errorf("failed to check journal entry: %w", err)
			}
			if exists {
				return custom_err.ErrDuplicateRequest
			}
			if err := s.journalRepo.RecordTransferTx(ctx, tx, event.SessionID, event.Transaction); err != nil {
				return fmt.Errorf("failed to record journal entry: %w", err)
			}
			return nil
		})
		switch {
		case errors.Is(err, custom_err.ErrDuplicateRequest):
			s.log.Debug("запись уже есть в журнале", slog.String("event_key", event.EventKey()))
		case err != nil:
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if event.Large {
		if err := s.kafkaProducer.SendTransferEvent(ctx, event); err != nil {
			return fmt.Errorf("%s: kafka: %w", op, err)
		}
		s.log.Info("event sent to kafka", slog.String("event_key", event.EventKey()))
	}

	return nil
}

func (s *TreasuryService) Journal(ctx context.Context) ([]models.JournalEntry, error) {
	const op = "service.Journal"

	if s.journalRepo == nil {
		return nil, fmt.Errorf("%s: journal is disabled", op)
	}

	entries, err := s.journalRepo.ListBySession(ctx, s.sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

// Shutdown останавливает воркеров, дожидаясь отправки событий из очереди
func (s *TreasuryService) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down treasury service")

	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.notice.Stop()
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("all event workers stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("shutdown timeout exceeded")
		return ctx.Err()
	}
}
