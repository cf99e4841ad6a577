package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	attendanceerrors "go-academy/internal/attendance/errors"
	"go-academy/internal/events"
	"go-academy/internal/messaging/kafka/consumer"
	"go-academy/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// scriptedReader hands out the queued messages, then cancels the consumer.
type scriptedReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type refreshCall struct {
	tenantID  string
	dayKey    string
	requestID string
}

// fakeRefresher fails every call for tenants in errs, and the first n calls for tenants in flaky.
type fakeRefresher struct {
	calls []refreshCall
	errs  map[string]error
	flaky map[string]int
}

func (f *fakeRefresher) Refresh(ctx context.Context, tenantID, dayKey string) error {
	f.calls = append(f.calls, refreshCall{tenantID, dayKey, contextutil.GetRequestID(ctx)})
	if f.flaky[tenantID] > 0 {
		f.flaky[tenantID]--
		return errors.New("redis: i/o timeout")
	}
	return f.errs[tenantID]
}

func message(t *testing.T, offset int64, event events.AttendanceRecordedEvent, headers ...kafkago.Header) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b, Headers: headers}
}

func TestConsumeAttendanceRecorded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ok := events.AttendanceRecordedEvent{
		EventType:      events.AttendanceRecordedEventType,
		RequestID:      "req-body",
		TenantID:       "tenant-a",
		AttendanceDate: "2025-03-04",
		EventID:        "e1",
	}
	transient := ok
	transient.TenantID = "tenant-down"
	rejected := ok
	rejected.TenantID = "tenant-bad"
	missingDate := ok
	missingDate.AttendanceDate = ""
	flaky := ok
	flaky.TenantID = "tenant-flaky"

	reader := &scriptedReader{
		cancel: cancel,
		queue: []kafkago.Message{
			message(t, 1, ok, kafkago.Header{Key: "request_id", Value: []byte("req-header")}),
			{Offset: 2, Value: []byte("not json")},
			message(t, 3, transient),
			message(t, 4, rejected),
			message(t, 5, missingDate),
			message(t, 6, ok),
			message(t, 7, flaky),
		},
	}
	refresher := &fakeRefresher{
		errs: map[string]error{
			"tenant-down": errors.New("redis: connection refused"),
			"tenant-bad":  attendanceerrors.ErrInvalidTenantID,
		},
		flaky: map[string]int{"tenant-flaky": 1},
	}

	consumer.ConsumeAttendanceRecorded(ctx, reader, refresher, zap.NewNop(), consumer.WithRetry(3, time.Millisecond))

	assert.Equal(t, []int64{1, 2, 4, 5, 6, 7}, reader.committed, "exhausted retries stay uncommitted")

	perTenant := map[string]int{}
	for _, c := range refresher.calls {
		perTenant[c.tenantID]++
	}
	assert.Equal(t, 3, perTenant["tenant-down"], "transient failures are retried up to the limit")
	assert.Equal(t, 1, perTenant["tenant-bad"], "rejected events are not retried")
	assert.Equal(t, 2, perTenant["tenant-flaky"])
	assert.Equal(t, 2, perTenant["tenant-a"])

	assert.Equal(t, refreshCall{"tenant-a", "2025-03-04", "req-header"}, refresher.calls[0])
	assert.Equal(t, "req-body", refresher.calls[5].requestID)
}
