package rules

// DefaultTable is the production rule table for the Servizi Facili 50+
// assistant. Order matters: when two patterns score the same confidence the
// earlier intent wins.
func DefaultTable() Table {
	return Table{
		Intents: []Intent{
			{
				Name:     "greeting",
				Patterns: []string{"ciao", "salve", "buongiorno", "buonasera", "aiuto", "help", "assistenza"},
				Responses: []string{
					"Ciao! Sono il tuo assistente digitale. Come posso aiutarti oggi?",
					"Salve! Sono qui per guidarti nell'uso dei servizi digitali. Di cosa hai bisogno?",
					"Buongiorno! Posso aiutarti a navigare tra i servizi pubblici online. Cosa ti serve?",
				},
				FollowUp: []string{"Puoi chiedermi di: pensioni, sanità, tasse, controllare email sospette, o spiegarti qualsiasi termine che non capisci."},
			},
			{
				Name:     "pension",
				Patterns: []string{"pensione", "inps", "pensionato", "accompagnamento", "invalidità"},
				Responses: []string{
					"Per accedere ai servizi INPS devi prima fare l'accesso alla web app. Ti sto portando alla pagina di accesso.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_inps"},
			},
			{
				Name:     "access_message_inps",
				Patterns: []string{"access_message_inps"},
				Responses: []string{
					"Perfetto, ti spiego tutto quello che devi sapere delle operazioni INPS. Clicca su una di queste operazioni.",
				},
				FollowUp: []string{"Domanda pensione", "Indennità di accompagnamento agli invalidi civili", "Assistenza domiciliare per non autosufficienti", "Come ottenere SPID"},
			},
			{
				Name:     "pension_application_intent",
				Patterns: []string{"domanda pensione"},
				Responses: []string{
					"Perfetto! Ti guido passo passo nella domanda di pensione INPS.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_inps"},
			},
			{
				Name:     "health",
				Patterns: []string{"medico", "visita", "prenotazione", "sanità", "puglia salute", "dottore", "ospedale", "referto"},
				Responses: []string{
					"Per accedere ai servizi sanitari devi prima fare l'accesso alla web app. Ti sto portando alla pagina di accesso.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_health"},
			},
			{
				Name:     "access_message_health",
				Patterns: []string{"access_message_health"},
				Responses: []string{
					"Perfetto, ti spiego tutto quello che devi sapere delle operazioni sanitarie. Clicca su una di queste operazioni.",
				},
				FollowUp: []string{"Gestione prenotazioni", "Pagamento ticket", "Referto on-line", "Diario Vaccinazioni", "Scelta/Revoca Medico"},
			},
			{
				Name:     "health_booking_intent",
				Patterns: []string{"gestione prenotazioni"},
				Responses: []string{
					"Perfetto! Ti guido passo passo per gestire le prenotazioni mediche.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_health"},
			},
			{
				Name:     "taxes",
				Patterns: []string{"tasse", "730", "fisco", "agenzia entrate", "cassetto fiscale"},
				Responses: []string{
					"Per accedere ai servizi dell'Agenzia delle Entrate devi prima fare l'accesso alla web app. Ti sto portando alla pagina di accesso.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_taxes"},
			},
			{
				Name:     "access_message_taxes",
				Patterns: []string{"access_message_taxes"},
				Responses: []string{
					"Perfetto, ti spiego tutto quello che devi sapere delle operazioni fiscali. Clicca su una di queste operazioni.",
				},
				FollowUp: []string{"Cassetto fiscale", "Dichiarazione precompilata", "Consegna documenti e istanze", "Come ottenere SPID"},
			},
			{
				Name:     "tax_declaration_intent",
				Patterns: []string{"dichiarazione precompilata"},
				Responses: []string{
					"Perfetto! Ti guido passo passo per la dichiarazione precompilata.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_taxes"},
			},
			{
				Name:     "poste",
				Patterns: []string{"poste", "spid", "cedolino", "pagamento", "bollettino"},
				Responses: []string{
					"Per accedere ai servizi di Poste Italiane devi prima fare l'accesso alla web app. Ti sto portando alla pagina di accesso.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_poste"},
			},
			{
				Name:     "access_message_poste",
				Patterns: []string{"access_message_poste"},
				Responses: []string{
					"Perfetto, ti spiego tutto quello che devi sapere delle operazioni di Poste Italiane. Clicca su una di queste operazioni.",
				},
				FollowUp: []string{"Richiesta cedolino pensione", "PosteID (attivazione SPID tramite Poste)", "Pagamenti online", "Come ottenere SPID"},
			},
			{
				Name:     "posteid_intent",
				Patterns: []string{"posteid (attivazione spid tramite poste)"},
				Responses: []string{
					"Perfetto! Ti guido passo passo per attivare SPID tramite Poste.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_poste"},
			},
			{
				Name:     "banking",
				Patterns: []string{"banca", "bcc", "conto", "bonifico", "homebanking"},
				Responses: []string{
					"Per accedere ai servizi BCC devi prima fare l'accesso alla web app. Ti sto portando alla pagina di accesso.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_bcc"},
			},
			{
				Name:     "access_message_bcc",
				Patterns: []string{"access_message_bcc"},
				Responses: []string{
					"Perfetto, ti spiego tutto quello che devi sapere delle operazioni bancarie. Clicca su una di queste operazioni.",
				},
				FollowUp: []string{"Trasparenza", "Registrazione RelaxBanking", "Informazioni prodotti", "Altro aiuto"},
			},
			{
				Name:     "relaxbanking_intent",
				Patterns: []string{"registrazione relaxbanking"},
				Responses: []string{
					"Perfetto! Ti guido passo passo per registrarti a RelaxBanking.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_bcc"},
			},
			{
				Name:     "inail",
				Patterns: []string{"inail", "infortunio", "lavoro", "prestazioni"},
				Responses: []string{
					"Per accedere ai servizi INAIL devi prima fare l'accesso alla web app. Ti sto portando alla pagina di accesso.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_inail"},
			},
			{
				Name:     "access_message_inail",
				Patterns: []string{"access_message_inail"},
				Responses: []string{
					"Perfetto, ti spiego tutto quello che devi sapere delle operazioni INAIL. Clicca su una di queste operazioni.",
				},
				FollowUp: []string{"Denuncia infortunio", "Consultazione pratiche", "Prestazioni economiche", "Altro aiuto"},
			},
			{
				Name:     "accident_report_intent",
				Patterns: []string{"denuncia infortunio"},
				Responses: []string{
					"Perfetto! Ti guido passo passo per denunciare un infortunio.",
				},
				Actions:  []string{"navigateToProfile"},
				FollowUp: []string{"access_message_inail"},
			},
			{
				Name:     "scam_email_check",
				Patterns: []string{"mail scam", "controlla email", "email sospetta", "phishing", "truffa email"},
				Responses: []string{
					"Perfetto! Ti aiuto a controllare se un'email è sicura o potrebbe essere una truffa. Incolla qui il testo completo dell'email che hai ricevuto e io ti dirò se è sicura, sospetta o pericolosa.",
				},
				FollowUp: []string{},
			},
			{
				Name:     "scam_email_another",
				Patterns: []string{"controlla altra email", "altra email", "controlla un'altra email"},
				Responses: []string{
					"Perfetto! Ti aiuto a controllare se un'altra email è sicura o potrebbe essere una truffa. Incolla qui il testo completo dell'email che hai ricevuto e io ti dirò se è sicura, sospetta o pericolosa.",
				},
				FollowUp: []string{},
			},
			{
				Name:     "spid_help",
				Patterns: []string{"cos'è spid", "come ottenere spid", "spid come fare", "identità digitale", "accesso"},
				Responses: []string{
					"Lo SPID è la tua identità digitale, come una carta d'identità per internet. Ti permette di accedere a tutti i servizi pubblici con un'unica password.",
					"SPID significa Sistema Pubblico di Identità Digitale. È sicuro e ti evita di ricordare tante password diverse.",
				},
				FollowUp: []string{"Il modo più semplice è andare alle Poste con documento e tessera sanitaria. Vuoi che ti spieghi come fare?"},
			},
			{
				Name:     "glossary",
				Patterns: []string{"non capisco", "cosa significa", "spiegami", "glossario", "dizionario", "termine"},
				Responses: []string{
					"Ti spiego volentieri! Scrivi la parola che non capisci e te la spiego in modo semplice.",
					"Perfetto! Sono qui per spiegare tutti i termini tecnici. Quale parola ti crea difficoltà?",
				},
				Actions: []string{"navigateToGlossary"},
			},
			{
				Name:     "navigation_help",
				Patterns: []string{"come funziona", "non so dove andare", "sono confuso", "aiuto navigazione", "dove cliccare"},
				Responses: []string{
					"Ti guido io! Dimmi cosa vuoi fare e ti accompagno passo passo.",
					"Nessun problema, è normale sentirsi confusi all'inizio. Cosa stai cercando di fare?",
				},
				FollowUp: []string{"Puoi sempre tornare alla pagina principale cliccando su \"Home\" in alto."},
			},
			{
				Name:     "security",
				Patterns: []string{"sicurezza", "password", "truffa", "phishing", "sicuro"},
				Responses: []string{
					"La sicurezza è importante! Ti do alcuni consigli: usa password diverse per ogni sito, non cliccare su link sospetti nelle email, e controlla sempre che il sito sia quello giusto.",
					"Ottima domanda sulla sicurezza. Ricorda: i siti pubblici veri hanno sempre il lucchetto verde nell'indirizzo e finiscono con .gov.it",
				},
				FollowUp: []string{"Se ricevi email sospette che sembrano dell'INPS o altri enti, non cliccare mai sui link. Vai sempre direttamente al sito ufficiale."},
			},
			{
				Name:     "technical_problems",
				Patterns: []string{"non funziona", "errore", "problema", "lento", "non carica", "bloccato"},
				Responses: []string{
					"Capisco la frustrazione! Proviamo a risolvere insieme. Che tipo di problema stai avendo?",
					"I problemi tecnici capitano. Dimmi cosa succede esattamente e vediamo come risolverlo.",
				},
				FollowUp: []string{"Spesso basta ricaricare la pagina (F5) o controllare la connessione internet."},
			},
			{
				Name:     "farewell",
				Patterns: []string{"grazie", "arrivederci", "ciao", "basta", "chiudi", "stop"},
				Responses: []string{
					"Prego! Sono sempre qui se hai bisogno. Buona giornata!",
					"È stato un piacere aiutarti! Torna quando vuoi, sono sempre disponibile.",
					"Alla prossima! Ricorda che puoi sempre cliccare sull'icona del chatbot per chiedere aiuto.",
				},
			},
		},

		FAQ: []FAQEntry{
			{"cos'è spid", "Lo SPID è la tua identità digitale per accedere ai servizi pubblici online. È come una carta d'identità per internet, sicura e facile da usare."},
			{"come ottenere spid", "Il modo più semplice è andare alle Poste con documento d'identità e tessera sanitaria. Ti fanno tutto loro in 10 minuti!"},
			{"password dimenticata", "Se hai dimenticato la password, cerca il link \"Password dimenticata\" nella pagina di login. Ti manderanno un'email per cambiarla."},
			{"sito lento", "Se il sito è lento, prova a ricaricare la pagina (tasto F5) o controlla la tua connessione internet."},
			{"non riesco ad accedere", "Per accedere ai servizi pubblici serve SPID, CIE o CNS. Se non li hai, posso spiegarti come ottenerli."},
			{"è sicuro", "Sì, tutti i servizi che ti mostro sono ufficiali e sicuri. Riconosci i siti veri dal lucchetto verde e dall'indirizzo che finisce con .gov.it"},
			{"serve pagare", "No, tutti i servizi pubblici sono gratuiti. Se ti chiedono soldi per accedere, è una truffa!"},
			{"posso fidarmi", "Assolutamente sì! Ti guido solo verso i siti ufficiali degli enti pubblici. Sono tutti sicuri e verificati."},
		},

		ContextualHelp: map[string]string{
			"/":               "Ciao! Sono il tuo assistente digitale\nSono qui per aiutarti a navigare tra i servizi pubblici online. Puoi chiedermi qualsiasi cosa!\n\nProva a chiedere:",
			"/servizi":        "Perfetto! Qui ci sono tutti i servizi disponibili. Quale ti interessa? Posso guidarti passo passo.",
			"/glossario":      "Ottimo posto per imparare! Qui puoi cercare il significato di qualsiasi termine tecnico. Scrivi una parola che non capisci.",
			"/service/inps":   "Sei nella sezione INPS per le pensioni. Vuoi aiuto con la domanda di pensione o altre prestazioni?",
			"/service/sanita": "Sei nei servizi sanitari di Puglia Salute. Posso aiutarti con prenotazioni, referti o pagamenti.",
			"/service/fisco":  "Sei nell'Agenzia delle Entrate. Ti aiuto con il 730, cassetto fiscale o invio documenti?",
			"/service/poste":  "Sei in Poste Italiane. Vuoi aiuto con PosteID, cedolini o pagamenti online?",
			"/service/bcc":    "Sei nei servizi BCC. Ti aiuto con RelaxBanking o informazioni sui prodotti?",
			"/service/inail":  "Sei in INAIL. Posso aiutarti con denunce di infortunio o consultazione pratiche?",
			"/guide":          "Stai leggendo la guida completa. Se hai domande specifiche, chiedimi pure!",
			"/profilo":        "Sei nella sezione profilo. Hai bisogno di aiuto per registrarti o accedere?",
		},

		QuickActions: []QuickAction{
			{Key: "vai_inps", Text: "🏛️ Vai a INPS", Action: "navigateToINPS"},
			{Key: "vai_sanita", Text: "🏥 Vai a Sanità", Action: "navigateToHealth"},
			{Key: "vai_fisco", Text: "💰 Vai a Fisco", Action: "navigateToTaxes"},
			{Key: "vai_poste", Text: "📮 Vai a Poste", Action: "navigateToPoste"},
			{Key: "glossario", Text: "📚 Apri Glossario", Action: "navigateToGlossary"},
			{Key: "guida", Text: "📖 Leggi Guida", Action: "navigateToGuide"},
		},
	}
}
