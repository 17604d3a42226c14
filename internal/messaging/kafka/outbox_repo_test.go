package kafka_test

import (
	"context"
	"testing"

	"go-empdir/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      uuid.NewString(),
		Topic:   "directory.employee.lifecycle.v1",
		Payload: []byte(`{"event_type":"employee_created"}`),
		Status:  kafka.OutboxStatusPending,
	}

	t.Run("valid event", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(valid))
	})

	t.Run("missing id", func(t *testing.T) {
		e := valid
		e.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("missing topic", func(t *testing.T) {
		e := valid
		e.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("empty payload", func(t *testing.T) {
		e := valid
		e.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("unknown status", func(t *testing.T) {
		e := valid
		e.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	event := kafka.OutboxEvent{
		ID:          uuid.NewString(),
		RequestID:   "REQ-1",
		AggregateID: uuid.NewString(),
		EventType:   "employee_created",
		Topic:       "directory.employee.lifecycle.v1",
		Payload:     []byte(`{}`),
		Status:      kafka.OutboxStatusPending,
	}

	t.Run("insert outside tx", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(event.ID, event.RequestID, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), event)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert inside tx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(event.ID, event.RequestID, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		err = repo.WithTx(tx).Create(context.Background(), event)
		assert.NoError(t, err)

		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	id := uuid.NewString()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureOutboxSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS outbox_events").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, kafka.EnsureOutboxSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	id := uuid.NewString()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
