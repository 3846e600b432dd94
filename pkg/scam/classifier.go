package scam

import "strings"

// RiskLevel is the verdict of the email heuristic.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskWarning RiskLevel = "warning"
	RiskDanger  RiskLevel = "danger"
)

// Keyword sets, checked by substring containment on the lowercased text.
// Danger entries ask for immediate action or sensitive data; warning entries
// are promotional bait; safe entries are markers of legitimate senders.
var (
	dangerKeywords = []string{
		"clicca su questo link", "urgente", "blocco account", "scadenza 24 ore",
		"verifica immediatamente", "errore nel calcolo", "problema con il pagamento",
		"spid-verifica", "inps-pensione", "amazon-verifica", "banca-italiana-verifica",
		"dati bancari", "password", "codice pin", "carta di credito", "inserisca i suoi dati",
		"inserisca:", "inserire i suoi dati", "numero di carta", "codice di sicurezza",
	}

	warningKeywords = []string{
		"clicca qui", "ha vinto", "premio", "congratulazioni", "offerta speciale",
		"investimenti", "consulente finanziario", "guadagna", "opportunità",
		"offerta", "promozione", "regalo", "concorso", "scade tra", "non perdere",
		"guadagna 1000€", "senza rischi", "garantito", "solo per te", "non può rifiutare",
	}

	safeKeywords = []string{
		"poste italiane", "comune di", "banca italiana", "agenzia delle entrate",
		"manutenzione programmata", "conferma spedizione", "avviso di pagamento",
		"servizio clienti", "numero verde", "800-", "ufficio",
	}
)

// Classify scores pasted email text. Precedence: any danger keyword wins
// outright (phishing imitates legitimate senders, so safe markers never
// rescue a dangerous mail), then safe markers, then warning bait; text with
// no hits at all defaults to safe. Pure function, no state.
func Classify(emailText string) RiskLevel {
	text := strings.ToLower(emailText)

	if containsAny(text, dangerKeywords) {
		return RiskDanger
	}
	if containsAny(text, safeKeywords) {
		return RiskSafe
	}
	if containsAny(text, warningKeywords) {
		return RiskWarning
	}
	return RiskSafe
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
