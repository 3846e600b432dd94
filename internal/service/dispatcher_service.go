package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"servizi-facili-be/internal/entity"
	"servizi-facili-be/internal/pkg/logger"
	"servizi-facili-be/pkg/events"
)

// IDispatcherService executes the action names attached to rule and wizard
// table entries. Navigation and highlight actions become events on the
// action bus; the show*Options actions expand into assistant messages that
// the caller appends to the transcript.
type IDispatcherService interface {
	Dispatch(ctx context.Context, sessionId uuid.UUID, authenticated bool, actions []string) []entity.ChatMessage
	PublishTyping(ctx context.Context, sessionId uuid.UUID, active bool)
	CancelAll(sessionId uuid.UUID)
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

type dispatcherService struct {
	pubSub         *gochannel.GoChannel
	topic          string
	highlightDelay time.Duration
	logger         logger.ILogger

	mu     sync.Mutex
	timers map[uuid.UUID]map[*time.Timer]struct{}
}

func NewDispatcherService(
	pubSub *gochannel.GoChannel,
	topic string,
	highlightDelay time.Duration,
	log logger.ILogger,
) IDispatcherService {
	return &dispatcherService{
		pubSub:         pubSub,
		topic:          topic,
		highlightDelay: highlightDelay,
		logger:         log,
		timers:         make(map[uuid.UUID]map[*time.Timer]struct{}),
	}
}

// Messages produced by the show*Options actions.
var optionMessages = map[string]struct {
	text         string
	quickReplies []string
}{
	"showHealthOptions": {
		text:         "Ecco cosa puoi fare con Puglia Salute:",
		quickReplies: []string{"Prenotare visita", "Vedere referto", "Pagare ticket", "Scegliere medico"},
	},
	"showTaxOptions": {
		text:         "Per l'Agenzia delle Entrate puoi:",
		quickReplies: []string{"Fare il 730", "Cassetto fiscale", "Inviare documenti"},
	},
	"showPosteOptions": {
		text:         "Con Poste Italiane puoi:",
		quickReplies: []string{"Attivare PosteID", "Vedere cedolino", "Pagare bollettini"},
	},
}

func (d *dispatcherService) Dispatch(ctx context.Context, sessionId uuid.UUID, authenticated bool, actions []string) []entity.ChatMessage {
	var extra []entity.ChatMessage

	for _, name := range actions {
		if opt, ok := optionMessages[name]; ok {
			extra = append(extra, entity.ChatMessage{
				Id:           uuid.New(),
				Author:       entity.ChatMessageAuthorBot,
				Text:         opt.text,
				QuickReplies: opt.quickReplies,
				CreatedAt:    time.Now(),
			})
			continue
		}

		action, ok := events.Resolve(name)
		if !ok {
			d.logger.Warn("dispatcher", "Skipping unknown action", map[string]interface{}{
				"action":     name,
				"session_id": sessionId.String(),
			})
			continue
		}

		// A profile navigation only makes sense for users who still
		// have to log in.
		if name == "navigateToProfile" && authenticated {
			continue
		}

		action.SessionId = sessionId
		action.EmittedAt = time.Now()

		if action.Kind == events.KindHighlight && d.highlightDelay > 0 {
			d.publishLater(sessionId, action)
			continue
		}
		d.publish(action)
	}

	return extra
}

// PublishTyping streams the assistant's typing state on the action bus so
// the websocket boundary can mirror the suspension window to the client.
func (d *dispatcherService) PublishTyping(_ context.Context, sessionId uuid.UUID, active bool) {
	d.publish(events.Typing(sessionId, active))
}

// publishLater defers a highlight so the frontend has navigated before the
// target element is pulsed. The timer is tracked so session teardown can
// cancel it.
func (d *dispatcherService) publishLater(sessionId uuid.UUID, action events.Action) {
	var timer *time.Timer
	timer = time.AfterFunc(d.highlightDelay, func() {
		d.publish(action)
		d.untrack(sessionId, timer)
	})
	d.track(sessionId, timer)
}

func (d *dispatcherService) publish(action events.Action) {
	payload, err := json.Marshal(action)
	if err != nil {
		d.logger.Error("dispatcher", "Failed to marshal action", map[string]interface{}{
			"action": action.Name,
			"error":  err.Error(),
		})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := d.pubSub.Publish(d.topic, msg); err != nil {
		d.logger.Error("dispatcher", "Failed to publish action", map[string]interface{}{
			"action": action.Name,
			"error":  err.Error(),
		})
	}
}

// CancelAll stops every pending deferred action for the session. Called on
// session teardown so no highlight fires into a destroyed session.
func (d *dispatcherService) CancelAll(sessionId uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for timer := range d.timers[sessionId] {
		timer.Stop()
	}
	delete(d.timers, sessionId)
}

func (d *dispatcherService) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return d.pubSub.Subscribe(ctx, d.topic)
}

func (d *dispatcherService) track(sessionId uuid.UUID, timer *time.Timer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timers[sessionId] == nil {
		d.timers[sessionId] = make(map[*time.Timer]struct{})
	}
	d.timers[sessionId][timer] = struct{}{}
}

func (d *dispatcherService) untrack(sessionId uuid.UUID, timer *time.Timer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.timers[sessionId], timer)
}
