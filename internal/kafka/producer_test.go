package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
	"treasury-simulator/internal/models"
	"treasury-simulator/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() models.TransferEvent {
	return models.TransferEvent{
		SessionID: uuid.MustParse("7f1c4a52-6a43-4b59-9d6e-0c5b0b8d1f10"),
		Transaction: models.Transaction{
			ID:            3,
			FromAccountID: "acc2",
			FromCurrency:  models.CurrencyKES,
			ToAccountID:   "acc1",
			ToCurrency:    models.CurrencyKES,
			Amount:        decimal.NewFromInt(40000),
			Currency:      models.CurrencyKES,
		},
		Large:     true,
		Timestamp: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func mockConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	return cfg
}

func TestKafkaProducer_SendTransferEvent(t *testing.T) {
	sp := mocks.NewSyncProducer(t, mockConfig())
	event := testEvent()

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got models.TransferEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Transaction.ID != 3 || !got.Large {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := newKafkaProducer(sp, "treasury-large-transfers", logger.NewDiscard())
	require.NoError(t, p.SendTransferEvent(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestKafkaProducer_SendTransferEvent_Error(t *testing.T) {
	sp := mocks.NewSyncProducer(t, mockConfig())
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newKafkaProducer(sp, "treasury-large-transfers", logger.NewDiscard())
	err := p.SendTransferEvent(context.Background(), testEvent())

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestNoOpProducer(t *testing.T) {
	p := NewNoOpProducer(logger.NewDiscard())

	assert.NoError(t, p.SendTransferEvent(context.Background(), testEvent()))
	assert.NoError(t, p.Close())
}

func TestTransferEvent_EventKey(t *testing.T) {
	assert.Equal(t, "7f1c4a52-6a43-4b59-9d6e-0c5b0b8d1f10:3", testEvent().EventKey())
}
