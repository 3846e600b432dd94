package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"servizi-facili-be/internal/config"
	"servizi-facili-be/internal/constant"
	"servizi-facili-be/internal/dto"
	"servizi-facili-be/internal/entity"
	"servizi-facili-be/internal/mapper"
	"servizi-facili-be/internal/pkg/logger"
	"servizi-facili-be/internal/repository/memory"
	"servizi-facili-be/internal/repository/records"
	"servizi-facili-be/pkg/catalog"
	"servizi-facili-be/pkg/glossary"
	"servizi-facili-be/pkg/helpers"
	"servizi-facili-be/pkg/rules"
	"servizi-facili-be/pkg/scam"
	"servizi-facili-be/pkg/wizard"
)

var ErrSessionNotFound = errors.New("assistant: session not found")

// IAssistantService is the dialogue controller: it owns the session state
// and decides, for every incoming message, which resolution rule applies.
type IAssistantService interface {
	OpenSession(ctx context.Context, req *dto.OpenSessionRequest) (*dto.OpenSessionResponse, error)
	SendMessage(ctx context.Context, sessionId uuid.UUID, authenticated bool, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Transcript(ctx context.Context, sessionId uuid.UUID) (*dto.TranscriptResponse, error)
	Preferences(ctx context.Context, sessionId uuid.UUID) (*dto.PreferencesResponse, error)
	SetRoute(ctx context.Context, sessionId uuid.UUID, route string) error
	Clear(ctx context.Context, sessionId uuid.UUID) error
	CloseSession(ctx context.Context, sessionId uuid.UUID) error
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	HandleLogin(ctx context.Context, sessionId uuid.UUID, userName string) (*dto.SendMessageResponse, error)
	HandleLogout(ctx context.Context, sessionId uuid.UUID) error
	QuickActions() []dto.QuickActionResponse
}

type assistantService struct {
	sessionRepo *memory.SessionRepository
	records     records.Store
	dispatcher  IDispatcherService
	table       rules.Table
	matcher     *rules.Matcher
	wizards     *wizard.Engine
	chatMapper  *mapper.ChatMapper
	logger      logger.ILogger

	typingDelay time.Duration
	rng         *rand.Rand
	now         func() time.Time

	// One turn at a time per process; sessions are single-user so this
	// coarse lock is enough. Released during typing waits so transcript
	// reads and teardown stay responsive.
	mu sync.Mutex
	// stateMu guards done independently of mu so teardown can cancel an
	// in-flight typing wait without queueing behind the turn lock.
	stateMu sync.Mutex
	// Open done channels, closed on session teardown to cancel pending
	// typing delays.
	done map[uuid.UUID]chan struct{}
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	recordStore records.Store,
	dispatcher IDispatcherService,
	table rules.Table,
	wizardTable wizard.Table,
	cfg config.ChatbotConfig,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessionRepo: sessionRepo,
		records:     recordStore,
		dispatcher:  dispatcher,
		table:       table,
		matcher:     rules.NewMatcher(table),
		wizards:     wizard.NewEngine(wizardTable),
		chatMapper:  mapper.NewChatMapper(),
		logger:      log,
		typingDelay: cfg.TypingDelay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
		done:        make(map[uuid.UUID]chan struct{}),
	}
}

// turn collects the messages appended while resolving one user input so the
// response can echo exactly what this turn produced.
type turn struct {
	session  *entity.SessionState
	appended []entity.ChatMessage
}

func (t *turn) add(msg entity.ChatMessage) {
	t.session.Messages = append(t.session.Messages, msg)
	if len(t.session.Messages) > constant.MaxTranscriptLength {
		t.session.Messages = t.session.Messages[len(t.session.Messages)-constant.MaxTranscriptLength:]
	}
	t.appended = append(t.appended, msg)
}

func (t *turn) bot(text string, quickReplies []string) {
	t.botActions(text, quickReplies, nil)
}

func (t *turn) botActions(text string, quickReplies []string, actions []string) {
	t.add(entity.ChatMessage{
		Id:           uuid.New(),
		Author:       entity.ChatMessageAuthorBot,
		Text:         text,
		QuickReplies: quickReplies,
		Actions:      actions,
		CreatedAt:    time.Now(),
	})
}

func (s *assistantService) OpenSession(ctx context.Context, req *dto.OpenSessionRequest) (*dto.OpenSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionId := req.SessionId
	if sessionId == uuid.Nil {
		sessionId = uuid.New()
	}
	session := entity.NewSessionState(sessionId)
	session.IsOpen = true
	session.CurrentRoute = req.Route

	// Restore what earlier sessions persisted.
	if _, err := s.records.Get(ctx, session.Id, constant.RecordPreferences, &session.Preferences); err != nil {
		s.logger.Warn("assistant", "Failed to load preferences", map[string]interface{}{"error": err.Error()})
	}
	var cursor entity.WizardCursor
	if found, err := s.records.Get(ctx, session.Id, constant.RecordWizardCursor, &cursor); err == nil && found && cursor.IsActive {
		session.Wizard = cursor
	}
	var pending string
	if found, err := s.records.Get(ctx, session.Id, constant.RecordPendingAccess, &pending); err == nil && found {
		session.PendingAccess = pending
	}

	// An already-authenticated caller gets the name from their token, so
	// the greeting is personal without a login round-trip.
	if req.UserName != "" && session.Preferences.UserName == "" {
		session.Preferences.UserName = req.UserName
		if err := s.records.Put(ctx, session.Id, constant.RecordPreferences, session.Preferences); err != nil {
			s.logger.Warn("assistant", "Failed to persist preferences", map[string]interface{}{"error": err.Error()})
		}
	}

	t := &turn{session: session}
	t.bot(s.greeting(session), constant.SuggestionsDefault)

	s.stateMu.Lock()
	if ch, ok := s.done[session.Id]; ok {
		// Reopening under the same id: release any wait still pending
		// on the previous channel before replacing it.
		close(ch)
	}
	s.done[session.Id] = make(chan struct{})
	s.stateMu.Unlock()
	s.sessionRepo.Save(session)

	return &dto.OpenSessionResponse{
		SessionId: session.Id,
		Messages:  s.chatMapper.MessagesToResponse(t.appended),
	}, nil
}

// greeting picks the route's contextual help when one exists, otherwise a
// time-of-day welcome personalized from the stored preferences.
func (s *assistantService) greeting(session *entity.SessionState) string {
	if help, ok := s.table.ContextualHelp[session.CurrentRoute]; ok && session.CurrentRoute != "/" && session.CurrentRoute != "" {
		return help
	}

	hour := s.now().Hour()
	greeting := "Buonasera"
	if hour < 12 {
		greeting = "Buongiorno"
	} else if hour < 18 {
		greeting = "Buon pomeriggio"
	}
	if name := session.Preferences.UserName; name != "" {
		greeting += " " + name + "!"
	} else {
		greeting += "!"
	}

	if n := len(session.Preferences.FavoriteServices); n > 0 {
		last := session.Preferences.FavoriteServices[n-1]
		return fmt.Sprintf("%s Vedo che usi spesso %s. Vuoi continuare con quello o ti serve altro?", greeting, last)
	}
	return greeting + " Sono il tuo assistente digitale. Come posso aiutarti oggi?"
}

func (s *assistantService) SendMessage(ctx context.Context, sessionId uuid.UUID, authenticated bool, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	t := &turn{session: session}
	s.resolve(ctx, t, authenticated, req.Text)
	// The session may have been torn down while the turn lock was
	// released for a typing wait; never resurrect it.
	if _, alive := s.sessionRepo.Get(sessionId); alive {
		s.sessionRepo.Save(session)
	}

	return &dto.SendMessageResponse{
		Messages: s.chatMapper.MessagesToResponse(t.appended),
	}, nil
}

// resolve runs the precedence chain for one user input. Every path appends
// at least one assistant message.
func (s *assistantService) resolve(ctx context.Context, t *turn, authenticated bool, rawInput string) {
	raw := strings.TrimSpace(rawInput)
	input := strings.ToLower(raw)
	session := t.session

	// 1. Length guard, answered without the typing delay.
	if len([]rune(rawInput)) > constant.MaxInputLength {
		t.bot(constant.MessageTooLong, nil)
		return
	}

	// Transcript size before this turn, used by the early-"sì" shortcut.
	preTurnCount := len(session.Messages)

	t.add(entity.ChatMessage{
		Id:        uuid.New(),
		Author:    entity.ChatMessageAuthorUser,
		Text:      raw,
		CreatedAt: time.Now(),
	})

	// 2. Active wizard: a failed option match falls through so the user
	// can ask something unrelated mid-wizard.
	if session.Wizard.IsActive {
		if s.advanceWizard(ctx, t, authenticated, raw) {
			return
		}
	}

	// 3. Wizard trigger.
	if wizardId, ok := s.wizards.Detect(input); ok {
		if s.startWizard(ctx, t, wizardId) {
			return
		}
	}

	// 4. Pasted-email detection.
	if s.analyzeScam(ctx, t, input) {
		return
	}

	// 5. Empathy: frustration first, then celebration.
	if helpers.DetectFrustration(raw) {
		s.simulateTyping(ctx, session)
		text := helpers.Pick(s.rng, helpers.Encouragement) + " " + helpers.Pick(s.rng, helpers.EmotionalSupport) +
			" Dimmi esattamente cosa non funziona e ti aiuto passo passo."
		t.bot(text, constant.QuickRepliesFrustration)
		return
	}
	if helpers.DetectSuccess(raw) {
		s.simulateTyping(ctx, session)
		text := helpers.Pick(s.rng, helpers.Encouragement) + " Sono felice di averti aiutato! C'è altro che posso fare per te?"
		t.bot(text, constant.QuickRepliesSuccess)
		return
	}

	// 6. Navigation tutorial, including the early "sì" after the welcome.
	if strings.Contains(input, "come navigare") || strings.Contains(input, "mostrami come navigare") ||
		((input == "si" || input == "sì") && preTurnCount <= 2) {
		s.simulateTyping(ctx, session)
		t.bot(constant.MessageNavigationTutorial, constant.QuickRepliesNavigation)
		return
	}

	// 7. FAQ exact-substring hit.
	if answer, ok := s.table.FAQAnswer(input); ok {
		s.simulateTyping(ctx, session)
		t.bot(answer, constant.QuickRepliesFaq)
		return
	}

	// 8. Intent match above the confidence floor.
	if match, ok := s.matcher.Match(input); ok && match.Confidence > rules.ConfidenceThreshold {
		if intent, found := s.table.Intent(match.Intent); found {
			s.respondToIntent(ctx, t, authenticated, intent)
			return
		}
	}

	// 9. Glossary, only for explicit questions.
	if isGlossaryQuestion(input) && s.explainTerm(ctx, t, input) {
		return
	}

	// 10. Free-text search over the service catalog.
	if s.searchServices(ctx, t, input) {
		return
	}

	// 11. Security and practical tips.
	if strings.Contains(input, "sicurezza") || strings.Contains(input, "truffa") || strings.Contains(input, "sicuro") {
		s.simulateTyping(ctx, session)
		t.bot("🔒 Ecco un consiglio importante per la tua sicurezza:\n\n"+helpers.Pick(s.rng, helpers.SecurityTips), constant.QuickRepliesTips)
		return
	}
	if strings.Contains(input, "consigli") || strings.Contains(input, "suggerimenti") || strings.Contains(input, "pratici") {
		s.simulateTyping(ctx, session)
		t.bot("💡 Ecco un consiglio pratico per usare meglio il computer:\n\n"+helpers.Pick(s.rng, helpers.PracticalTips), constant.QuickRepliesPractical)
		return
	}

	// 12. Fallback with suggestions personalized by service history.
	suggestions := constant.SuggestionsDefault
	if session.Preferences.HasFavoriteService("inps") {
		suggestions = constant.SuggestionsInps
	} else if session.Preferences.HasFavoriteService("sanita") {
		suggestions = constant.SuggestionsSanita
	}
	s.simulateTyping(ctx, session)
	t.bot(constant.MessageFallback, suggestions)
}

// advanceWizard reports whether the turn was consumed by the active wizard.
func (s *assistantService) advanceWizard(ctx context.Context, t *turn, authenticated bool, selection string) bool {
	session := t.session
	cursor := wizard.Cursor(session.Wizard)

	res, err := s.wizards.Advance(cursor, selection)
	switch {
	case errors.Is(err, wizard.ErrNoMatchingOption):
		return false
	case err != nil:
		// Stale or corrupt cursor. Drop it and treat the turn as
		// ordinary conversation.
		s.logger.Warn("assistant", "Abandoning unresolvable wizard cursor", map[string]interface{}{
			"session_id": session.Id.String(),
			"wizard_id":  session.Wizard.WizardId,
			"error":      err.Error(),
		})
		s.resetWizard(ctx, session)
		return false
	}

	s.simulateTyping(ctx, session)
	t.botActions(res.Response, nil, res.Actions)
	for _, msg := range s.dispatcher.Dispatch(ctx, session.Id, authenticated, res.Actions) {
		t.add(msg)
	}
	if res.Next != nil {
		t.bot(res.Next.Prompt, res.Next.Options)
	}

	session.Wizard = entity.WizardCursor(res.Cursor)
	s.persistWizard(ctx, session)
	return true
}

// startWizard activates wizardId, abandoning any wizard the trigger
// interrupted. Unknown ids fall through to the remaining rules.
func (s *assistantService) startWizard(ctx context.Context, t *turn, wizardId string) bool {
	session := t.session

	if session.Wizard.IsActive {
		s.logger.Info("assistant", "Abandoning active wizard for new trigger", map[string]interface{}{
			"session_id": session.Id.String(),
			"old_wizard": session.Wizard.WizardId,
			"new_wizard": wizardId,
		})
		s.resetWizard(ctx, session)
	}

	res, err := s.wizards.Start(wizard.Cursor(session.Wizard), wizardId)
	if err != nil {
		s.logger.Warn("assistant", "Wizard trigger fired for unknown wizard", map[string]interface{}{
			"wizard_id": wizardId,
			"error":     err.Error(),
		})
		return false
	}

	s.simulateTyping(ctx, session)
	t.bot(res.Step.Prompt, res.Step.Options)

	session.Wizard = entity.WizardCursor(res.Cursor)
	s.persistWizard(ctx, session)
	return true
}

// analyzeScam reports whether the input was treated as pasted email text.
func (s *assistantService) analyzeScam(ctx context.Context, t *turn, input string) bool {
	for _, reply := range constant.ScamExcludedReplies {
		if strings.Contains(input, reply) {
			return false
		}
	}
	for _, phrase := range constant.ServiceSelectionPhrases {
		if input == phrase {
			return false
		}
	}

	hasIndicators := false
	for _, indicator := range constant.EmailIndicators {
		if strings.Contains(input, indicator) {
			hasIndicators = true
			break
		}
	}

	// After the assistant invited the user to paste an email, the next
	// turn is always analyzed.
	afterInvite := false
	for i := len(t.session.Messages) - 1; i >= 0; i-- {
		msg := t.session.Messages[i]
		if msg.Author != entity.ChatMessageAuthorBot {
			continue
		}
		afterInvite = strings.Contains(msg.Text, constant.ScamInvitePhrase)
		break
	}

	if !afterInvite && !(hasIndicators && (len(input) > 50 || hasIndicators)) {
		return false
	}

	var verdict string
	switch scam.Classify(input) {
	case scam.RiskDanger:
		verdict = constant.MessageScamDanger
	case scam.RiskWarning:
		verdict = constant.MessageScamWarning
	default:
		verdict = constant.MessageScamSafe
	}

	s.simulateTyping(ctx, t.session)
	t.bot(verdict+constant.MessageScamAdvice, constant.QuickRepliesScam)
	return true
}

// respondToIntent emits the intent's response, runs its actions, and plays
// the access-message handshake for service intents.
func (s *assistantService) respondToIntent(ctx context.Context, t *turn, authenticated bool, intent rules.Intent) {
	session := t.session
	response := intent.Responses[s.rng.Intn(len(intent.Responses))]
	accessKey, hasAccess := intent.AccessFollowUp()

	s.simulateTyping(ctx, session)

	if !hasAccess {
		t.botActions(response, intent.FollowUp, intent.Actions)
		for _, msg := range s.dispatcher.Dispatch(ctx, session.Id, authenticated, intent.Actions) {
			t.add(msg)
		}
		return
	}

	// The "please log in first" prompt only makes sense before login.
	if !authenticated {
		t.botActions(response, nil, intent.Actions)
		session.PendingAccess = accessKey
		if err := s.records.Put(ctx, session.Id, constant.RecordPendingAccess, accessKey); err != nil {
			s.logger.Warn("assistant", "Failed to persist pending access marker", map[string]interface{}{"error": err.Error()})
		}
	}

	for _, msg := range s.dispatcher.Dispatch(ctx, session.Id, authenticated, intent.Actions) {
		t.add(msg)
	}

	s.emitAccessMessage(t, accessKey)
}

// emitAccessMessage appends the access-message intent's content, once per
// transcript.
func (s *assistantService) emitAccessMessage(t *turn, accessKey string) {
	accessIntent, found := s.table.Intent(accessKey)
	if !found || len(accessIntent.Responses) == 0 {
		s.logger.Warn("assistant", "Unknown access-message intent", map[string]interface{}{"key": accessKey})
		return
	}

	text := accessIntent.Responses[0]
	for _, msg := range t.session.Messages {
		if msg.Author == entity.ChatMessageAuthorBot && msg.Text == text {
			return
		}
	}
	t.bot(text, accessIntent.FollowUp)
}

// explainTerm answers explicit "what does X mean" questions from the
// glossary, preferring the simplified explanations when one exists.
func (s *assistantService) explainTerm(ctx context.Context, t *turn, input string) bool {
	if term, ok := glossary.Search(input); ok {
		explanation := term.Description
		if simple, found := helpers.SimpleExplanations[strings.ToLower(term.Slang)]; found {
			explanation = simple
		}
		s.simulateTyping(ctx, t.session)
		t.bot("📚 **"+term.Slang+"**: "+explanation, constant.QuickRepliesGlossary)
		return true
	}

	if term, explanation, ok := helpers.SimpleExplanation(input); ok {
		s.simulateTyping(ctx, t.session)
		t.bot("💡 **"+capitalize(term)+"**: "+explanation, constant.QuickRepliesSimpleTerm)
		return true
	}
	return false
}

var searchWordReplacer = strings.NewReplacer("cerca", "", "trova", "", "dove", "", "come", "")

// searchServices handles "cerca/trova/dove/come" queries: it rewrites
// everyday words into catalog vocabulary, tracks the service in the
// favorites history and points the UI at the services page.
func (s *assistantService) searchServices(ctx context.Context, t *turn, input string) bool {
	if !strings.Contains(input, "cerca") && !strings.Contains(input, "trova") &&
		!strings.Contains(input, "dove") && !strings.Contains(input, "come") {
		return false
	}

	searchTerm := strings.TrimSpace(searchWordReplacer.Replace(input))
	searchTerm = catalog.NormalizeQuery(searchTerm)
	if searchTerm == "" {
		return false
	}

	session := t.session
	changed := false
	if strings.Contains(searchTerm, "inps") {
		changed = session.Preferences.AddFavoriteService("inps") || changed
	}
	if strings.Contains(searchTerm, "sanità") {
		changed = session.Preferences.AddFavoriteService("sanita") || changed
	}
	if changed {
		if err := s.records.Put(ctx, session.Id, constant.RecordPreferences, session.Preferences); err != nil {
			s.logger.Warn("assistant", "Failed to persist preferences", map[string]interface{}{"error": err.Error()})
		}
	}

	s.dispatcher.Dispatch(ctx, session.Id, false, []string{"navigateToServices"})

	s.simulateTyping(ctx, session)
	t.botActions(fmt.Sprintf("Ho cercato \"%s\" nei servizi. Guarda i risultati! Se non trovi quello che cerchi, prova a essere più specifico.", searchTerm), constant.QuickRepliesSearch, []string{"navigateToServices"})
	return true
}

func (s *assistantService) Transcript(_ context.Context, sessionId uuid.UUID) (*dto.TranscriptResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}
	return &dto.TranscriptResponse{
		SessionId:   session.Id,
		IsOpen:      session.IsOpen,
		IsSuspended: session.IsSuspended,
		Messages:    s.chatMapper.MessagesToResponse(session.Messages),
	}, nil
}

func (s *assistantService) Preferences(_ context.Context, sessionId uuid.UUID) (*dto.PreferencesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}
	res := s.chatMapper.PreferencesToResponse(session.Preferences)
	return &res, nil
}

func (s *assistantService) SetRoute(_ context.Context, sessionId uuid.UUID, route string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return ErrSessionNotFound
	}
	session.CurrentRoute = route
	s.sessionRepo.Save(session)
	return nil
}

// Clear resets the transcript only; preferences and any active wizard
// survive.
func (s *assistantService) Clear(_ context.Context, sessionId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return ErrSessionNotFound
	}
	session.Messages = []entity.ChatMessage{}
	s.sessionRepo.Save(session)
	return nil
}

// CloseSession hides the assistant. The transcript is kept only while an
// access handshake is pending, so the conversation context survives the
// login round-trip.
func (s *assistantService) CloseSession(_ context.Context, sessionId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return ErrSessionNotFound
	}
	session.IsOpen = false
	if session.PendingAccess == "" {
		session.Messages = []entity.ChatMessage{}
	}
	s.sessionRepo.Save(session)
	return nil
}

// DeleteSession tears the session down: cancels pending timers and drops
// the live state. Persisted preferences survive for the next session.
func (s *assistantService) DeleteSession(_ context.Context, sessionId uuid.UUID) error {
	// Release any in-flight typing wait before taking the turn lock, so
	// teardown never queues behind the delay it is meant to cancel.
	s.stateMu.Lock()
	if ch, ok := s.done[sessionId]; ok {
		close(ch)
		delete(s.done, sessionId)
	}
	s.stateMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatcher.CancelAll(sessionId)
	s.sessionRepo.Delete(sessionId)
	return nil
}

// HandleLogin stores the display name and completes a pending access
// handshake by emitting the service's access message.
func (s *assistantService) HandleLogin(ctx context.Context, sessionId uuid.UUID, userName string) (*dto.SendMessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	if userName != "" && session.Preferences.UserName != userName {
		session.Preferences.UserName = userName
		if err := s.records.Put(ctx, sessionId, constant.RecordPreferences, session.Preferences); err != nil {
			s.logger.Warn("assistant", "Failed to persist preferences", map[string]interface{}{"error": err.Error()})
		}
	}

	t := &turn{session: session}
	if session.PendingAccess != "" {
		s.emitAccessMessage(t, session.PendingAccess)
		session.PendingAccess = ""
		if err := s.records.Delete(ctx, sessionId, constant.RecordPendingAccess); err != nil {
			s.logger.Warn("assistant", "Failed to clear pending access marker", map[string]interface{}{"error": err.Error()})
		}
	}
	s.sessionRepo.Save(session)

	return &dto.SendMessageResponse{
		Messages: s.chatMapper.MessagesToResponse(t.appended),
	}, nil
}

// HandleLogout drops the pending access marker and the wizard cursor, which
// must not survive a loss of authentication.
func (s *assistantService) HandleLogout(ctx context.Context, sessionId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return ErrSessionNotFound
	}

	session.PendingAccess = ""
	if err := s.records.Delete(ctx, sessionId, constant.RecordPendingAccess); err != nil {
		s.logger.Warn("assistant", "Failed to clear pending access marker", map[string]interface{}{"error": err.Error()})
	}
	s.resetWizard(ctx, session)
	s.sessionRepo.Save(session)
	return nil
}

func (s *assistantService) QuickActions() []dto.QuickActionResponse {
	out := make([]dto.QuickActionResponse, 0, len(s.table.QuickActions))
	for _, qa := range s.table.QuickActions {
		out = append(out, dto.QuickActionResponse{Key: qa.Key, Text: qa.Text, Action: qa.Action})
	}
	return out
}

// simulateTyping suspends the session for the configured delay and streams
// typing start/stop events so the frontend can disable input during the
// window. The turn lock is released while waiting, which makes the suspended
// flag visible to transcript reads and lets teardown cancel the wait.
func (s *assistantService) simulateTyping(ctx context.Context, session *entity.SessionState) {
	if s.typingDelay <= 0 {
		return
	}
	session.IsSuspended = true
	s.dispatcher.PublishTyping(ctx, session.Id, true)

	s.stateMu.Lock()
	done := s.done[session.Id]
	s.stateMu.Unlock()

	timer := time.NewTimer(s.typingDelay)
	defer timer.Stop()

	s.mu.Unlock()
	if done == nil {
		<-timer.C
	} else {
		select {
		case <-timer.C:
		case <-done:
		}
	}
	s.mu.Lock()

	session.IsSuspended = false
	s.dispatcher.PublishTyping(ctx, session.Id, false)
}

func (s *assistantService) persistWizard(ctx context.Context, session *entity.SessionState) {
	var err error
	if session.Wizard.IsActive {
		err = s.records.Put(ctx, session.Id, constant.RecordWizardCursor, session.Wizard)
	} else {
		err = s.records.Delete(ctx, session.Id, constant.RecordWizardCursor)
	}
	if err != nil {
		s.logger.Warn("assistant", "Failed to persist wizard cursor", map[string]interface{}{"error": err.Error()})
	}
}

func (s *assistantService) resetWizard(ctx context.Context, session *entity.SessionState) {
	session.Wizard = entity.WizardCursor{}
	s.persistWizard(ctx, session)
}

func isGlossaryQuestion(input string) bool {
	for _, marker := range constant.GlossaryQuestionMarkers {
		if strings.Contains(input, marker) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
