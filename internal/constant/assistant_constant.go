package constant

const (
	// Hard bound on a single user turn. Anything longer is rejected
	// before any other processing.
	MaxInputLength = 5000

	// Transcript cap: oldest entries are evicted past this size.
	MaxTranscriptLength = 50

	MessageTooLong = "Il messaggio è troppo lungo. Per favore, riduci il testo e riprova."

	MessageFallback = "Non ho capito bene la tua richiesta. Puoi provare a chiedere di:"

	// Multi-paragraph navigation tutorial, returned verbatim for the
	// canonical "come navigare" phrases and the early "sì" reply.
	MessageNavigationTutorial = "Perfetto! Ti spiego come navigare su Servizi Facili 50+:\n\n**In alto nella pagina trovi:**\n• **Home** - Torna alla pagina principale\n• **Servizi** - Tutti i servizi pubblici (INPS, Sanità, Fisco, ecc.) - *Visibile solo dopo aver fatto l'accesso*\n• **Guide** - Istruzioni dettagliate per usare il sito\n• **👤 Profilo** - I tuoi dati personali e accesso\n\n**🔍 Barra di ricerca:**\nClicca sulla lente di ingrandimento per cercare quello che ti serve (es. \"pensione\" o \"visita medica\")\n\n**♿ Pulsanti di accessibilità:**\nIn basso a sinistra trovi pulsanti per:\n• Ingrandire il testo\n• Aumentare il contrasto\n• Modalità focus\n\n**💬 Assistente (questo chatbot):**\nClicca sull'icona blu in basso a destra per parlarmi\n\nVuoi che ti mostri un servizio specifico?"

	// Scam verdict texts, one per risk level.
	MessageScamSafe    = "🟢 **SICURA** - Questa email sembra legittima e sicura. Puoi fidarti del contenuto."
	MessageScamWarning = "🟡 **ATTENZIONE** - Questa email potrebbe essere sospetta. Controlla bene prima di cliccare su qualsiasi link o fornire dati personali."
	MessageScamDanger  = "🔴 **PERICOLOSA** - Questa email è molto probabilmente una truffa! NON cliccare su link, NON fornire dati personali, NON rispondere. Elimina l'email immediatamente."

	MessageScamAdvice = "\n\n**Consigli di sicurezza:**\n• Mai cliccare su link in email sospette\n• Mai fornire password o dati bancari via email\n• Se hai dubbi, contatta direttamente l'azienda\n• Le banche e uffici pubblici NON chiedono mai dati via email"

	// Substring of the assistant replies that invite the user to paste an
	// email. When the previous bot message contains it, the next turn is
	// always analyzed as pasted email text.
	ScamInvitePhrase = "controllare se un'email è sicura"
)

// Named records on the persistence port. Each is scoped per session by the
// record store.
const (
	RecordPreferences   = "chatbot_prefs"
	RecordWizardCursor  = "chatbot_wizard"
	RecordPendingAccess = "chatbot_pending"
)

// Quick-reply sets reused across resolution branches.
var (
	QuickRepliesScam        = []string{"Controlla altra email", "Come riconoscere email sicure", "Torna ai servizi"}
	QuickRepliesFrustration = []string{"Non riesco ad accedere", "Non capisco i termini", "Il sito è confuso", "Aiuto generale"}
	QuickRepliesSuccess     = []string{"Altro servizio", "Spiegami altro", "No, grazie", "Consigli sicurezza"}
	QuickRepliesNavigation  = []string{"Pensioni INPS", "Sanità Puglia", "Tasse e 730", "Glossario termini"}
	QuickRepliesFaq         = []string{"Altro aiuto", "Vai ai servizi", "Chiudi chat"}
	QuickRepliesGlossary    = []string{"Altro termine", "Vai al glossario", "Torna ai servizi"}
	QuickRepliesSimpleTerm  = []string{"Altro termine", "Vai al glossario", "Consigli pratici"}
	QuickRepliesSearch      = []string{"Pensioni", "Sanità", "Tasse", "Altro aiuto"}
	QuickRepliesTips        = []string{"Altri consigli", "Consigli pratici", "Torna ai servizi"}
	QuickRepliesPractical   = []string{"Altri consigli", "Consigli sicurezza", "Torna ai servizi"}

	// Fallback suggestions, personalized by favorite-service history.
	SuggestionsDefault = []string{"Pensioni INPS", "Sanità Puglia", "Tasse e 730", "Glossario termini", "Mail scam"}
	SuggestionsInps    = []string{"Pensioni INPS", "Sanità", "Consigli sicurezza", "Glossario", "Mail scam"}
	SuggestionsSanita  = []string{"Prenotare visita", "Pensioni", "Consigli pratici", "Glossario", "Mail scam"}
)

// Quick-reply labels that must never be fed to the scam classifier: they
// originate from our own buttons, not from pasted mail.
var ScamExcludedReplies = []string{
	"controlla altra email", "come riconoscere email sicure", "torna ai servizi",
	"altro termine", "vai al glossario", "consigli pratici", "altri consigli",
	"consigli sicurezza", "altro aiuto", "vai ai servizi", "chiudi chat",
	"pensioni inps", "sanità puglia", "tasse e 730", "glossario termini", "mail scam",
}

// Canonical service-selection phrases (exact match denylist for the scam
// branch).
var ServiceSelectionPhrases = []string{
	"pensioni inps", "sanità puglia", "tasse e 730", "glossario termini", "mail scam",
}

// Substrings that make free text look like a pasted email.
var EmailIndicators = []string{
	"@", "oggetto:", "gentile", "buongiorno", "email", "ciao", "premio", "vinto", "congratulazioni",
	"offerta", "scade", "clicca qui", "www.", "http", "team", "staff", "servizio clienti",
	"banca", "poste", "agenzia", "comune", "amazon", "paypal", "ebay",
}

// Question markers that gate the glossary lookup.
var GlossaryQuestionMarkers = []string{
	"che cosa significa", "cosa significa", "che significa", "cos'è",
	"spiegami", "definizione di", "significato di", "?",
}
