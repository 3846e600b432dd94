package glossary

import "strings"

// Term is one glossary entry: the tech word and its plain-language meaning.
type Term struct {
	Slang       string `json:"slang"`
	Description string `json:"description"`
}

// Termini is the full glossary, alphabetical as shown in the UI.
var Termini = []Term{
	{Slang: "Antivirus", Description: "Software che rileva e rimuove virus e minacce dal computer."},
	{Slang: "Backup", Description: "Copia di sicurezza dei dati per proteggerli da perdita o danni."},
	{Slang: "Browser", Description: "Programma per navigare su internet (es. Chrome, Firefox)."},
	{Slang: "CAPTCHA", Description: "Test per distinguere umani da robot."},
	{Slang: "Cookie", Description: "Piccolo file usato per ricordare informazioni su un sito."},
	{Slang: "Download", Description: "Scaricare un file da internet al computer."},
	{Slang: "Email", Description: "Messaggio elettronico inviato tramite internet."},
	{Slang: "Firewall", Description: "Barriera di sicurezza che protegge il computer da accessi non autorizzati."},
	{Slang: "Frode phishing", Description: "Tentativo di ingannare una persona per ottenere dati personali tramite email o siti falsi."},
	{Slang: "Hardware", Description: "Componenti fisici del computer (es. tastiera, mouse, disco fisso)."},
	{Slang: "Help desk", Description: "Servizio di assistenza tecnica per problemi informatici."},
	{Slang: "Home banking", Description: "Sistema per gestire il conto bancario tramite internet."},
	{Slang: "Identity theft (furto d'identità)", Description: "Uso illegale dei dati personali per truffe o furti."},
	{Slang: "Login", Description: "Accesso a un sito con nome utente e password."},
	{Slang: "Malware", Description: "Programma dannoso che può infettare il computer."},
	{Slang: "Phishing", Description: "Truffa via email o siti web falsi per rubare informazioni personali."},
	{Slang: "Password", Description: "Parola segreta usata per proteggere l'accesso a un account o dispositivo."},
	{Slang: "Popup", Description: "Finestra che si apre automaticamente durante la navigazione, a volte pubblicitaria o pericolosa."},
	{Slang: "Router", Description: "Dispositivo che connette la rete internet a casa o ufficio."},
	{Slang: "Spam", Description: "Email indesiderate o pubblicitarie inviate in massa."},
	{Slang: "Trojan (Cavallo di Troia)", Description: "Programma dannoso che si nasconde in software apparentemente innocui."},
	{Slang: "Upload", Description: "Caricare un file dal computer a internet."},
	{Slang: "URL", Description: "Indirizzo dei siti web (esempio: www.google.it)."},
	{Slang: "Virus", Description: "Programma che può causare danni al computer e ai dati."},
	{Slang: "VPN (Virtual Private Network)", Description: "Rete privata che protegge la connessione internet e la privacy."},
	{Slang: "Wi-Fi", Description: "Connessione internet senza fili."},
	{Slang: "Worm (verme)", Description: "Tipo di virus informatico che si propaga da solo attraverso la rete."},
}

// Search finds the first term whose name contains the input or is contained
// in it, case-insensitively. Bidirectional containment lets "cos'è il
// phishing?" hit "Phishing" and "vpn" hit "VPN (Virtual Private Network)".
func Search(input string) (Term, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Term{}, false
	}
	for _, t := range Termini {
		slang := strings.ToLower(t.Slang)
		if strings.Contains(normalized, slang) || strings.Contains(slang, normalized) {
			return t, true
		}
	}
	return Term{}, false
}
