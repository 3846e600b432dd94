package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servizi-facili-be/internal/config"
	"servizi-facili-be/internal/constant"
	"servizi-facili-be/internal/dto"
	"servizi-facili-be/internal/repository/memory"
	"servizi-facili-be/internal/repository/records"
	"servizi-facili-be/pkg/events"
	"servizi-facili-be/pkg/rules"
	"servizi-facili-be/pkg/wizard"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// newTestAssistant builds the service with a zero typing delay, a seeded rng
// and a fixed morning clock.
func newTestAssistant(t *testing.T) *assistantService {
	t.Helper()
	log := nopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	dispatcher := NewDispatcherService(pubSub, "test.actions", 0, log)

	cfg := config.ChatbotConfig{TypingDelay: 0, HighlightDelay: 0, ActionsTopic: "test.actions"}
	svc := NewAssistantService(
		memory.NewSessionRepository(),
		records.NewMemoryStore(log),
		dispatcher,
		rules.DefaultTable(),
		wizard.DefaultTable(),
		cfg,
		log,
	)

	as := svc.(*assistantService)
	as.rng = rand.New(rand.NewSource(1))
	as.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return as
}

func openSession(t *testing.T, s *assistantService, route string) uuid.UUID {
	t.Helper()
	res, err := s.OpenSession(context.Background(), &dto.OpenSessionRequest{Route: route})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	return res.SessionId
}

func send(t *testing.T, s *assistantService, sessionId uuid.UUID, text string) []dto.ChatMessageResponse {
	t.Helper()
	res, err := s.SendMessage(context.Background(), sessionId, false, &dto.SendMessageRequest{Text: text})
	require.NoError(t, err)
	return res.Messages
}

func sendAuth(t *testing.T, s *assistantService, sessionId uuid.UUID, text string) []dto.ChatMessageResponse {
	t.Helper()
	res, err := s.SendMessage(context.Background(), sessionId, true, &dto.SendMessageRequest{Text: text})
	require.NoError(t, err)
	return res.Messages
}

func botTexts(msgs []dto.ChatMessageResponse) []string {
	var out []string
	for _, m := range msgs {
		if m.Author == "bot" {
			out = append(out, m.Text)
		}
	}
	return out
}

func TestOpenSessionGreeting(t *testing.T) {
	s := newTestAssistant(t)

	res, err := s.OpenSession(context.Background(), &dto.OpenSessionRequest{Route: "/"})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0].Text, "Buongiorno")
	assert.Equal(t, constant.SuggestionsDefault, res.Messages[0].QuickReplies)
}

func TestOpenSessionContextualHelp(t *testing.T) {
	s := newTestAssistant(t)

	res, err := s.OpenSession(context.Background(), &dto.OpenSessionRequest{Route: "/servizi"})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, rules.DefaultTable().ContextualHelp["/servizi"], res.Messages[0].Text)
}

func TestLengthGuard(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, strings.Repeat("a", constant.MaxInputLength+1))
	require.Len(t, msgs, 1)
	assert.Equal(t, constant.MessageTooLong, msgs[0].Text)

	// The over-long text never enters the transcript.
	transcript, err := s.Transcript(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Len(t, transcript.Messages, 2)
}

func TestNavigationTutorial(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "sì")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Equal(t, constant.MessageNavigationTutorial, texts[0])

	// Later in the conversation a bare "sì" no longer means "show me".
	send(t, s, sessionId, "qwerty")
	msgs = send(t, s, sessionId, "sì")
	texts = botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Equal(t, constant.MessageFallback, texts[0])
}

func TestFrustrationEmpathy(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "non riesco a fare niente")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "Dimmi esattamente cosa non funziona")
	assert.Equal(t, constant.QuickRepliesFrustration, msgs[len(msgs)-1].QuickReplies)
}

func TestSuccessCelebration(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "ce l'ho fatta!")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "Sono felice di averti aiutato")
	assert.Equal(t, constant.QuickRepliesSuccess, msgs[len(msgs)-1].QuickReplies)
}

func TestScamAnalysisOfPastedEmail(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	email := "Oggetto: URGENTE - Blocco account bancario\n\nInserisca: numero di carta e codice PIN per riattivare il conto."
	msgs := send(t, s, sessionId, email)
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.True(t, strings.HasPrefix(texts[0], constant.MessageScamDanger))
	assert.Contains(t, texts[0], "Consigli di sicurezza")
	assert.Equal(t, constant.QuickRepliesScam, msgs[len(msgs)-1].QuickReplies)
}

func TestScamAnalysisAfterInvite(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "mail scam")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], constant.ScamInvitePhrase)

	// After the invite even short neutral text is analyzed as pasted mail.
	msgs = send(t, s, sessionId, "ci vediamo al mercato")
	texts = botTexts(msgs)
	require.Len(t, texts, 1)
	assert.True(t, strings.HasPrefix(texts[0], constant.MessageScamSafe))
}

func TestWizardFlow(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "voglio fare domanda di pensione")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "hai già lo SPID")

	msgs = send(t, s, sessionId, "Sì, ce l'ho")
	texts = botTexts(msgs)
	require.Len(t, texts, 2)
	assert.Equal(t, "Perfetto! Ora vediamo i documenti che ti servono.", texts[0])
	assert.Contains(t, texts[1], "documenti")

	// Off-script input falls through to the other rules without losing the
	// wizard position.
	msgs = send(t, s, sessionId, "qwerty")
	texts = botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Equal(t, constant.MessageFallback, texts[0])

	msgs = send(t, s, sessionId, "Sì, ho tutto")
	texts = botTexts(msgs)
	require.Len(t, texts, 2)
	assert.Equal(t, "Ottimo! Procediamo con la domanda.", texts[0])
}

func TestWizardTriggerInterruptsActiveWizard(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	send(t, s, sessionId, "voglio fare domanda di pensione")
	msgs := send(t, s, sessionId, "devo prenotare una visita dal medico")
	texts := botTexts(msgs)
	require.NotEmpty(t, texts)

	session, found := s.sessionRepo.Get(sessionId)
	require.True(t, found)
	assert.Equal(t, "health_booking", session.Wizard.WizardId)
}

func TestAccessMessageUnauthenticated(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "pensione")
	texts := botTexts(msgs)
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "devi prima fare l'accesso")
	assert.Contains(t, texts[1], "operazioni INPS")
	assert.Equal(t, []string(nil), msgs[1].QuickReplies)

	session, found := s.sessionRepo.Get(sessionId)
	require.True(t, found)
	assert.Equal(t, "access_message_inps", session.PendingAccess)

	// The access message is emitted once per transcript.
	msgs = send(t, s, sessionId, "pensione")
	texts = botTexts(msgs)
	require.Len(t, texts, 1)
	assert.NotContains(t, texts[0], "operazioni INPS")
}

func TestAccessMessageAuthenticated(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := sendAuth(t, s, sessionId, "pensione")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.NotContains(t, texts[0], "devi prima fare l'accesso")
	assert.Contains(t, texts[0], "operazioni INPS")

	session, found := s.sessionRepo.Get(sessionId)
	require.True(t, found)
	assert.Empty(t, session.PendingAccess)
}

func TestHandleLoginStoresNameAndClearsPending(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")
	send(t, s, sessionId, "pensione")

	_, err := s.HandleLogin(context.Background(), sessionId, "Mario")
	require.NoError(t, err)

	session, found := s.sessionRepo.Get(sessionId)
	require.True(t, found)
	assert.Empty(t, session.PendingAccess)
	assert.Equal(t, "Mario", session.Preferences.UserName)

	// Reopening under the same id restores the stored name.
	res, err := s.OpenSession(context.Background(), &dto.OpenSessionRequest{SessionId: sessionId, Route: "/"})
	require.NoError(t, err)
	assert.Contains(t, res.Messages[0].Text, "Buongiorno Mario!")
}

func TestGlossaryAnswers(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "cos'è il firewall?")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "📚 **Firewall**")
	assert.Equal(t, constant.QuickRepliesGlossary, msgs[len(msgs)-1].QuickReplies)

	// The simplified explanation wins over the glossary description.
	msgs = send(t, s, sessionId, "cos'è il browser?")
	texts = botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "Il browser è il programma che usi per navigare")
}

func TestSearchTracksFavorites(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "cerca soldi")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], `"pensioni inps"`)
	assert.Equal(t, constant.QuickRepliesSearch, msgs[len(msgs)-1].QuickReplies)

	// The tracked favorite personalizes later fallback suggestions.
	msgs = send(t, s, sessionId, "qwerty")
	assert.Equal(t, constant.SuggestionsInps, msgs[len(msgs)-1].QuickReplies)
}

func TestSecurityTip(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "vorrei qualche dritta per navigare sicuro su internet per favore")
	texts := botTexts(msgs)
	require.Len(t, texts, 1)
	assert.True(t, strings.HasPrefix(texts[0], "🔒"))
	assert.Equal(t, constant.QuickRepliesTips, msgs[len(msgs)-1].QuickReplies)
}

func TestClearKeepsSession(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")
	send(t, s, sessionId, "ciao")

	require.NoError(t, s.Clear(context.Background(), sessionId))

	transcript, err := s.Transcript(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Empty(t, transcript.Messages)
}

func TestCloseSessionTranscriptRetention(t *testing.T) {
	s := newTestAssistant(t)

	// Without a pending access handshake the transcript is dropped.
	sessionId := openSession(t, s, "/")
	send(t, s, sessionId, "ciao")
	require.NoError(t, s.CloseSession(context.Background(), sessionId))
	transcript, err := s.Transcript(context.Background(), sessionId)
	require.NoError(t, err)
	assert.False(t, transcript.IsOpen)
	assert.Empty(t, transcript.Messages)

	// A pending handshake keeps the conversation for the login round-trip.
	sessionId = openSession(t, s, "/")
	send(t, s, sessionId, "pensione")
	require.NoError(t, s.CloseSession(context.Background(), sessionId))
	transcript, err = s.Transcript(context.Background(), sessionId)
	require.NoError(t, err)
	assert.NotEmpty(t, transcript.Messages)
}

func TestDeleteSession(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	require.NoError(t, s.DeleteSession(context.Background(), sessionId))

	_, err := s.SendMessage(context.Background(), sessionId, false, &dto.SendMessageRequest{Text: "ciao"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTranscriptCap(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	for i := 0; i < 30; i++ {
		send(t, s, sessionId, "qwerty")
	}

	transcript, err := s.Transcript(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Len(t, transcript.Messages, constant.MaxTranscriptLength)
}

func TestQuickActions(t *testing.T) {
	s := newTestAssistant(t)

	actions := s.QuickActions()
	require.NotEmpty(t, actions)
	assert.Equal(t, "vai_inps", actions[0].Key)
	assert.Equal(t, "navigateToINPS", actions[0].Action)
}

func TestPreferences(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	prefs, err := s.Preferences(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Empty(t, prefs.FavoriteServices)

	send(t, s, sessionId, "cerca soldi")
	prefs, err = s.Preferences(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Equal(t, []string{"inps"}, prefs.FavoriteServices)

	_, err = s.Preferences(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// waitSuspended polls the transcript until the typing window becomes
// visible.
func waitSuspended(t *testing.T, s *assistantService, sessionId uuid.UUID) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		transcript, err := s.Transcript(context.Background(), sessionId)
		require.NoError(t, err)
		if transcript.IsSuspended {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("session never reported a suspended typing window")
}

func TestTypingWindowIsObservable(t *testing.T) {
	s := newTestAssistant(t)
	s.typingDelay = 100 * time.Millisecond
	sessionId := openSession(t, s, "/")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus, err := s.dispatcher.Subscribe(ctx)
	require.NoError(t, err)

	turnDone := make(chan struct{})
	var sendErr error
	go func() {
		defer close(turnDone)
		_, sendErr = s.SendMessage(context.Background(), sessionId, false, &dto.SendMessageRequest{Text: "non funziona"})
	}()

	// A concurrent transcript read sees the suspended flag mid-turn.
	waitSuspended(t, s, sessionId)

	expectTyping := func(active bool) {
		t.Helper()
		select {
		case msg := <-bus:
			var action events.Action
			require.NoError(t, json.Unmarshal(msg.Payload, &action))
			assert.Equal(t, events.KindTyping, action.Kind)
			assert.Equal(t, active, action.Active)
			assert.Equal(t, sessionId, action.SessionId)
			msg.Ack()
		case <-time.After(time.Second):
			t.Fatal("no typing event on the action bus")
		}
	}
	expectTyping(true)
	expectTyping(false)

	<-turnDone
	require.NoError(t, sendErr)

	transcript, err := s.Transcript(context.Background(), sessionId)
	require.NoError(t, err)
	assert.False(t, transcript.IsSuspended)
}

func TestDeleteSessionCancelsTypingWait(t *testing.T) {
	s := newTestAssistant(t)
	s.typingDelay = 3 * time.Second
	sessionId := openSession(t, s, "/")

	turnDone := make(chan struct{})
	go func() {
		defer close(turnDone)
		_, _ = s.SendMessage(context.Background(), sessionId, false, &dto.SendMessageRequest{Text: "non funziona"})
	}()

	waitSuspended(t, s, sessionId)

	start := time.Now()
	require.NoError(t, s.DeleteSession(context.Background(), sessionId))
	select {
	case <-turnDone:
	case <-time.After(time.Second):
		t.Fatal("teardown did not cancel the typing wait")
	}
	assert.Less(t, time.Since(start), time.Second)

	// The interrupted turn must not resurrect the deleted session.
	_, err := s.Transcript(context.Background(), sessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestReopenSessionClosesStaleDoneChannel(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	s.stateMu.Lock()
	stale := s.done[sessionId]
	s.stateMu.Unlock()
	require.NotNil(t, stale)

	_, err := s.OpenSession(context.Background(), &dto.OpenSessionRequest{SessionId: sessionId})
	require.NoError(t, err)

	select {
	case <-stale:
	default:
		t.Error("previous done channel not closed on reopen")
	}
}

func TestMessagesCarryActionNames(t *testing.T) {
	s := newTestAssistant(t)
	sessionId := openSession(t, s, "/")

	msgs := send(t, s, sessionId, "pensione")
	var acted []string
	for _, m := range msgs {
		if m.Author == "bot" && len(m.Actions) > 0 {
			acted = m.Actions
			break
		}
	}
	assert.Equal(t, []string{"navigateToProfile"}, acted)

	msgs = send(t, s, sessionId, "cerca soldi")
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	assert.Equal(t, []string{"navigateToServices"}, last.Actions)
}

func TestOpenSessionSeedsAuthenticatedName(t *testing.T) {
	s := newTestAssistant(t)

	res, err := s.OpenSession(context.Background(), &dto.OpenSessionRequest{Route: "/", UserName: "Anna"})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0].Text, "Buongiorno Anna!")

	prefs, err := s.Preferences(context.Background(), res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "Anna", prefs.UserName)
}
