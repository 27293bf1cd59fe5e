package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "test", uuid.New()),
	}
}

func TestPublishDispatchesToSubscribedHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("order.created"))

	require.NoError(t, err)
	require.Len(t, handler.received, 1)
	assert.Equal(t, "order.created", handler.received[0].EventType())
}

func TestPublishSkipsUnrelatedHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("product.created"))

	require.NoError(t, err)
	assert.Empty(t, handler.received)
}

func TestWildcardHandlerReceivesAllEvents(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(),
		newTestEvent("order.created"),
		newTestEvent("product.stock_adjusted"),
	)

	require.NoError(t, err)
	assert.Len(t, handler.received, 2)
}

func TestHandlerErrorDoesNotStopDispatch(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{types: []string{"order.created"}, err: errors.New("boom")}
	healthy := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("order.created"))

	require.NoError(t, err)
	assert.Len(t, healthy.received, 1)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := &recordingHandler{types: []string{"order.created"}, panics: true}
	healthy := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), newTestEvent("order.created"))
	})
	assert.Len(t, healthy.received, 1)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("order.created"))

	require.NoError(t, err)
	assert.Empty(t, handler.received)
}

func TestAuditLogHandlerAcceptsAnyEvent(t *testing.T) {
	handler := NewAuditLogHandler(zap.NewNop())

	assert.Empty(t, handler.EventTypes())
	assert.NoError(t, handler.Handle(context.Background(), newTestEvent("order.created")))
}
