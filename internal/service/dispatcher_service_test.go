package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servizi-facili-be/pkg/events"
)

func newTestDispatcher(t *testing.T) IDispatcherService {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	return NewDispatcherService(pubSub, "test.actions", 0, nopLogger{})
}

func TestDispatchPublishesNavigation(t *testing.T) {
	d := newTestDispatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := d.Subscribe(ctx)
	require.NoError(t, err)

	sessionId := uuid.New()
	extra := d.Dispatch(ctx, sessionId, false, []string{"unknownAction", "navigateToServices"})
	assert.Empty(t, extra)

	select {
	case msg := <-msgs:
		var action events.Action
		require.NoError(t, json.Unmarshal(msg.Payload, &action))
		assert.Equal(t, "navigateToServices", action.Name)
		assert.Equal(t, events.KindNavigate, action.Kind)
		assert.Equal(t, "/servizi", action.Route)
		assert.Equal(t, sessionId, action.SessionId)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no action published")
	}
}

func TestDispatchExpandsOptionMessages(t *testing.T) {
	d := newTestDispatcher(t)

	extra := d.Dispatch(context.Background(), uuid.New(), false, []string{"showHealthOptions"})
	require.Len(t, extra, 1)
	assert.Equal(t, "Ecco cosa puoi fare con Puglia Salute:", extra[0].Text)
	assert.NotEmpty(t, extra[0].QuickReplies)
}

func TestDispatchSkipsProfileNavigationWhenAuthenticated(t *testing.T) {
	d := newTestDispatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := d.Subscribe(ctx)
	require.NoError(t, err)

	d.Dispatch(ctx, uuid.New(), true, []string{"navigateToProfile"})

	select {
	case msg := <-msgs:
		t.Fatalf("unexpected action published: %s", msg.Payload)
	case <-time.After(100 * time.Millisecond):
	}
}
