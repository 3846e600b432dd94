package wizard

import "strings"

// DefaultTable returns the authored wizard graphs and their trigger rules.
// Trigger order matters: the pension rule must run before the generic tax
// rule so "domanda pensione e tasse" starts the pension wizard.
func DefaultTable() Table {
	return Table{
		Wizards: map[string]Wizard{
			"pension_application": pensionApplication(),
			"health_booking":      healthBooking(),
			"spid_setup":          spidSetup(),
			"tax_declaration":     taxDeclaration(),
		},
		Triggers: []Trigger{
			{WizardId: "pension_application", Match: func(s string) bool {
				return strings.Contains(s, "domanda") && strings.Contains(s, "pensione")
			}},
			{WizardId: "health_booking", Match: func(s string) bool {
				return strings.Contains(s, "prenotare") || strings.Contains(s, "visita") || strings.Contains(s, "medico")
			}},
			{WizardId: "spid_setup", Match: func(s string) bool {
				return strings.Contains(s, "spid") && (strings.Contains(s, "come") || strings.Contains(s, "ottenere"))
			}},
			{WizardId: "tax_declaration", Match: func(s string) bool {
				return strings.Contains(s, "730") || (strings.Contains(s, "dichiarazione") && strings.Contains(s, "redditi"))
			}},
			{WizardId: "tax_declaration", Match: func(s string) bool {
				return strings.Contains(s, "tasse") || (strings.Contains(s, "agenzia") && strings.Contains(s, "entrate"))
			}},
		},
	}
}

func pensionApplication() Wizard {
	return Wizard{
		Id:          "pension_application",
		Name:        "Domanda di Pensione",
		Description: "Ti guido passo passo per fare la domanda di pensione INPS",
		EntryStep:   "check_spid",
		Steps: map[string]Step{
			"check_spid": {
				Id:      "check_spid",
				Prompt:  "Prima di tutto, hai già lo SPID per accedere al sito INPS?",
				Options: []string{"Sì, ce l'ho", "No, non ce l'ho", "Non so cos'è lo SPID"},
				Response: map[string]string{
					"Sì, ce l'ho":           "Perfetto! Ora vediamo i documenti che ti servono.",
					"No, non ce l'ho":       "Nessun problema! Ti spiego come ottenerlo facilmente.",
					"Non so cos'è lo SPID":  "Lo SPID è la tua identità digitale per accedere ai servizi pubblici. Te lo spiego!",
				},
				Next: map[string]string{
					"Sì, ce l'ho":          "check_documents",
					"No, non ce l'ho":      "get_spid",
					"Non so cos'è lo SPID": "explain_spid",
				},
			},
			"explain_spid": {
				Id:      "explain_spid",
				Prompt:  "Lo SPID è come una carta d'identità digitale. Ti permette di accedere a INPS, Agenzia delle Entrate e altri servizi con un'unica password sicura. Vuoi che ti spieghi come ottenerlo?",
				Options: []string{"Sì, spiegamelo", "Forse più tardi", "Ho capito, procediamo"},
				Response: map[string]string{
					"Sì, spiegamelo":        "Il modo più semplice è andare alle Poste con documento e tessera sanitaria.",
					"Forse più tardi":       "Va bene! Quando sei pronto, torna qui e ti aiuto.",
					"Ho capito, procediamo": "Ottimo! Allora per ora ti mostro cosa serve per la pensione.",
				},
				Next: map[string]string{
					"Sì, spiegamelo":        "get_spid",
					"Forse più tardi":       "end_later",
					"Ho capito, procediamo": "check_documents",
				},
			},
			"get_spid": {
				Id:      "get_spid",
				Prompt:  "Per ottenere SPID facilmente, vai alle Poste con documento d'identità e tessera sanitaria. Ti fanno tutto in 10 minuti! Vuoi che ti porti alla pagina di Poste per vedere i dettagli?",
				Options: []string{"Sì, portami alle Poste", "Preferisco altri modi", "Torno dopo aver fatto SPID"},
				Response: map[string]string{
					"Sì, portami alle Poste":     "Ti porto alla sezione Poste dove trovi tutte le informazioni per PosteID!",
					"Preferisco altri modi":      "Puoi anche usare altri provider come Aruba, Sielte, o InfoCert. Ma Poste è il più semplice per chi non è pratico.",
					"Torno dopo aver fatto SPID": "Perfetto! Quando hai SPID, torna qui e ti guido nella domanda di pensione.",
				},
				Actions: map[string][]string{
					"Sì, portami alle Poste": {"navigateToPoste", "highlightPosteid"},
				},
				Next: map[string]string{
					"Sì, portami alle Poste":     "end_poste",
					"Preferisco altri modi":      "other_spid",
					"Torno dopo aver fatto SPID": "end_later",
				},
			},
			"check_documents": {
				Id:      "check_documents",
				Prompt:  "Per la domanda di pensione ti servono questi documenti:\n\n📄 **Documento d'identità** (carta d'identità o patente)\n🏷️ **Codice fiscale** (tessera sanitaria va bene)\n📋 **Certificazioni contributive** (estratto conto INPS)\n\nHai già tutti questi documenti?",
				Options: []string{"Sì, ho tutto", "Non sono sicuro", "Cosa sono le certificazioni contributive?"},
				Response: map[string]string{
					"Sì, ho tutto":    "Ottimo! Procediamo con la domanda.",
					"Non sono sicuro": "Non preoccuparti! Ti spiego nel dettaglio cosa serve.",
					"Cosa sono le certificazioni contributive?": "Sono i documenti che mostrano tutti gli anni che hai lavorato e i contributi che hai versato. Li trovi online sul sito INPS.",
				},
				Next: map[string]string{
					"Sì, ho tutto":    "go_to_inps",
					"Non sono sicuro": "explain_documents",
					"Cosa sono le certificazioni contributive?": "explain_contributions",
				},
			},
			"explain_documents": {
				Id:      "explain_documents",
				Prompt:  "Ti spiego nel dettaglio:\n\n📄 **Documento d'identità**: carta d'identità, patente o passaporto (deve essere valido)\n🏷️ **Codice fiscale**: la tessera sanitaria va benissimo\n📋 **Certificazioni contributive**: sono i documenti che mostrano i tuoi anni di lavoro\n\nHai almeno documento d'identità e codice fiscale?",
				Options: []string{"Sì, quelli li ho", "Devo controllare", "Come ottengo le certificazioni?"},
				Response: map[string]string{
					"Sì, quelli li ho":                "Bene! Procediamo con la domanda.",
					"Devo controllare":                "Va bene, controlla con calma e torna quando hai tutto pronto.",
					"Come ottengo le certificazioni?": "Te lo spiego subito!",
				},
				Next: map[string]string{
					"Sì, quelli li ho":                "go_to_inps",
					"Devo controllare":                "end_later",
					"Come ottengo le certificazioni?": "explain_contributions",
				},
			},
			"explain_contributions": {
				Id:     "explain_contributions",
				Prompt: "Le certificazioni contributive le trovi nel tuo \"Estratto Conto Contributivo\" sul sito INPS: accedi con SPID, cerca \"Estratto conto contributivo\" e lo puoi consultare o scaricare. Quando ce l'hai, scrivi \"domanda pensione\" e ripartiamo!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"go_to_inps": {
				Id:      "go_to_inps",
				Prompt:  "Perfetto! Ti guido passo passo nella domanda di pensione INPS:",
				Options: []string{"Iniziamo!", "Ho altre domande", "Fallo più tardi"},
				Response: map[string]string{
					"Iniziamo!":        "Ottimo! Prima ti porto alla sezione Profilo per accedere all'app.",
					"Ho altre domande": "Certo! Dimmi pure cosa vuoi sapere.",
					"Fallo più tardi":  "Va bene! Torna quando sei pronto.",
				},
				Actions: map[string][]string{
					"Iniziamo!": {"navigateToProfile"},
				},
				Next: map[string]string{
					"Iniziamo!":        "login_step",
					"Ho altre domande": "more_questions",
					"Fallo più tardi":  "end_later",
				},
			},
			"login_step": {
				Id:      "login_step",
				Prompt:  "Ora sei nella sezione Profilo! Effettua l'accesso alla web app con le tue credenziali.\n\nHai completato l'accesso?",
				Options: []string{"Sì, ho fatto l'accesso", "Ho problemi con l'accesso", "Non ricordo le credenziali"},
				Response: map[string]string{
					"Sì, ho fatto l'accesso":     "Ottimo! Prima ti porto alla sezione Servizi della nostra app.",
					"Ho problemi con l'accesso":  "Nessun problema! Ti aiuto con l'accesso.",
					"Non ricordo le credenziali": "Ti aiuto a recuperare le credenziali.",
				},
				Actions: map[string][]string{
					"Sì, ho fatto l'accesso": {"navigateToServices"},
				},
				Next: map[string]string{
					"Sì, ho fatto l'accesso":     "navigate_to_pension",
					"Ho problemi con l'accesso":  "help_login",
					"Non ricordo le credenziali": "recover_credentials",
				},
			},
			"navigate_to_pension": {
				Id:      "navigate_to_pension",
				Prompt:  "Ora sei nella pagina Servizi! Segui questi passaggi:\n\n1️⃣ **Clicca su \"Pensioni (INPS)\"** per aprire il servizio\n2️⃣ **Clicca su \"Domanda pensione\"** nell'elenco delle operazioni\n3️⃣ **Clicca su \"Vai al sito ufficiale\"** per aprire il sito INPS\n\nHai completato questi passaggi?",
				Options: []string{"Sì, sono sul sito INPS", "Non trovo \"Pensioni (INPS)\"", "Ho bisogno di aiuto"},
				Response: map[string]string{
					"Sì, sono sul sito INPS":       "Ottimo! Procediamo con la domanda.",
					"Non trovo \"Pensioni (INPS)\"": "Nessun problema! Guarda nella pagina Servizi, dovrebbe essere la prima card con l'icona INPS.",
					"Ho bisogno di aiuto":          "Ti aiuto io! Segui i passaggi uno alla volta.",
				},
				Actions: map[string][]string{
					"Sì, sono sul sito INPS": {"navigateToINPS"},
				},
				Next: map[string]string{
					"Sì, sono sul sito INPS":       "inps_detailed_guide",
					"Non trovo \"Pensioni (INPS)\"": "help_find_inps",
					"Ho bisogno di aiuto":          "help_navigation",
				},
			},
			"help_find_inps": {
				Id:      "help_find_inps",
				Prompt:  "Ti aiuto a trovare il servizio INPS:\n\n🔍 Nella pagina Servizi, cerca una card con:\n• **Titolo**: \"Pensioni (INPS)\"\n• **Icona**: Logo INPS\n• **Descrizione**: parla di pensioni e domande\n\nL'hai trovata?",
				Options: []string{"Sì, l'ho trovata", "No, non la vedo", "Portami direttamente lì"},
				Response: map[string]string{
					"Sì, l'ho trovata":        "Ottimo! Ora clicca su \"Apri servizio\" per continuare.",
					"No, non la vedo":         "Ti porto direttamente alla sezione INPS.",
					"Portami direttamente lì": "Ti porto subito alla sezione INPS!",
				},
				Actions: map[string][]string{
					"No, non la vedo":         {"navigateToINPS"},
					"Portami direttamente lì": {"navigateToINPS"},
				},
				Next: map[string]string{
					"Sì, l'ho trovata":        "navigate_to_pension",
					"No, non la vedo":         "select_pension_operation",
					"Portami direttamente lì": "select_pension_operation",
				},
			},
			"help_navigation": {
				Id:     "help_navigation",
				Prompt: "Andiamo con calma, un passaggio alla volta:\n\n1️⃣ Apri la pagina Servizi dal menu in alto\n2️⃣ Clicca sulla card \"Pensioni (INPS)\"\n3️⃣ Nell'elenco operazioni clicca \"Domanda pensione\"\n\nQuando sei arrivato, scrivi \"domanda pensione\" e continuiamo da lì!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"select_pension_operation": {
				Id:      "select_pension_operation",
				Prompt:  "Perfetto! Ora sei nella sezione INPS. Segui questi passaggi:\n\n1️⃣ **Clicca su \"Domanda pensione\"** nell'elenco delle operazioni\n2️⃣ **Clicca su \"Vai al sito ufficiale\"** per aprire il sito INPS\n\nHai completato questi passaggi?",
				Options: []string{"Sì, sono sul sito INPS", "Non trovo \"Domanda pensione\"", "Portami direttamente alla guida"},
				Response: map[string]string{
					"Sì, sono sul sito INPS":         "Ottimo! Procediamo con la domanda.",
					"Non trovo \"Domanda pensione\"":  "Dovrebbe essere la prima operazione nell'elenco. Ti porto direttamente lì.",
					"Portami direttamente alla guida": "Ti porto subito alla guida per la domanda di pensione!",
				},
				Actions: map[string][]string{
					"Non trovo \"Domanda pensione\"":  {"navigateToPensionApplication"},
					"Portami direttamente alla guida": {"navigateToPensionApplication"},
				},
				Next: map[string]string{
					"Sì, sono sul sito INPS":         "inps_detailed_guide",
					"Non trovo \"Domanda pensione\"":  "final_inps_guide",
					"Portami direttamente alla guida": "final_inps_guide",
				},
			},
			"final_inps_guide": {
				Id:      "final_inps_guide",
				Prompt:  "Perfetto! Ora sei nella guida per la domanda di pensione. Leggi attentamente le istruzioni e i consigli utili, poi clicca su \"Vai al sito ufficiale\" per aprire il sito INPS.\n\nSei pronto per procedere sul sito INPS?",
				Options: []string{"Sì, sono pronto", "Voglio rileggere la guida", "Ho altre domande"},
				Response: map[string]string{
					"Sì, sono pronto":           "Ottimo! Ora ti spiego cosa fare sul sito INPS.",
					"Voglio rileggere la guida": "Perfetto! Prenditi tutto il tempo che ti serve per leggere la guida.",
					"Ho altre domande":          "Certo! Dimmi pure cosa vuoi sapere.",
				},
				Next: map[string]string{
					"Sì, sono pronto":           "inps_detailed_guide",
					"Voglio rileggere la guida": "final_inps_guide",
					"Ho altre domande":          "more_questions",
				},
			},
			"inps_detailed_guide": {
				Id:      "inps_detailed_guide",
				Prompt:  "Ecco la procedura completa per la domanda di pensione:\n\n1️⃣ Clicca \"Accedi con SPID\" sul sito INPS\n2️⃣ Inserisci le tue credenziali SPID\n3️⃣ Cerca \"Domanda di pensione\" nel menu\n4️⃣ Clicca \"Nuova domanda\"\n5️⃣ Compila i dati anagrafici (già precompilati)\n\nSei riuscito ad accedere con SPID?",
				Options: []string{"Sì, sono dentro", "Non riesco ad accedere", "Non trovo \"Domanda pensione\""},
				Response: map[string]string{
					"Sì, sono dentro":               "Perfetto! Ora ti guido nella compilazione della domanda.",
					"Non riesco ad accedere":        "Nessun problema! Ti aiuto con l'accesso SPID.",
					"Non trovo \"Domanda pensione\"": "Te lo mostro! Guarda nella sezione \"Prestazioni e Servizi\" o usa la ricerca.",
				},
				Next: map[string]string{
					"Sì, sono dentro":               "pension_form_guide",
					"Non riesco ad accedere":        "spid_access_help",
					"Non trovo \"Domanda pensione\"": "find_pension_section",
				},
			},
			"spid_access_help": {
				Id:     "spid_access_help",
				Prompt: "Per l'accesso SPID controlla:\n\n✅ Nome utente e password SPID corretti\n✅ Conferma la notifica sull'app del tuo provider (PosteID, Aruba, ecc.)\n✅ Se hai dimenticato la password, usa \"Recupera credenziali\" sul sito del provider\n\nQuando sei dentro, scrivi \"domanda pensione\" e continuiamo!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"find_pension_section": {
				Id:     "find_pension_section",
				Prompt: "Sul sito INPS:\n\n1️⃣ Apri il menu \"Prestazioni e Servizi\"\n2️⃣ Oppure scrivi \"domanda di pensione\" nella barra di ricerca in alto\n3️⃣ Scegli \"Domanda Pensione, Ricostituzione, Ratei\"\n\nQuando l'hai trovata, scrivi \"domanda pensione\" e ti guido nella compilazione!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"pension_form_guide": {
				Id:      "pension_form_guide",
				Prompt:  "Ora compila la domanda:\n\n6️⃣ Controlla i dati anagrafici (nome, cognome, CF)\n7️⃣ Inserisci i dati contributivi (anni di lavoro)\n8️⃣ Seleziona il tipo di pensione (vecchiaia/anticipata)\n9️⃣ Allega documenti se richiesti (PDF)\n🔟 Controlla tutto e invia\n\nA che punto sei?",
				Options: []string{"Sto compilando", "Non capisco i dati contributivi", "Come allego documenti?"},
				Response: map[string]string{
					"Sto compilando":                  "Ottimo! Prenditi il tempo necessario. Se hai dubbi, torna qui.",
					"Non capisco i dati contributivi": "I dati contributivi sono gli anni che hai lavorato e versato contributi. Li trovi nell'estratto conto.",
					"Come allego documenti?":          "Clicca \"Allega file\", seleziona il PDF dal computer e caricalo. Massimo 5MB per file.",
				},
				Next: map[string]string{
					"Sto compilando":                  "final_submission",
					"Non capisco i dati contributivi": "contributory_data_help",
					"Come allego documenti?":          "document_upload_help",
				},
			},
			"contributory_data_help": {
				Id:     "contributory_data_help",
				Prompt: "I dati contributivi sono il riepilogo degli anni di lavoro e dei contributi versati. Sul sito INPS cerca \"Estratto conto contributivo\": lì trovi tutto già calcolato, ti basta ricopiare i periodi. Quando hai finito, scrivi \"domanda pensione\" e ti accompagno all'invio!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"document_upload_help": {
				Id:     "document_upload_help",
				Prompt: "Per allegare un documento:\n\n1️⃣ Clicca \"Allega file\" nella pagina della domanda\n2️⃣ Scegli il file PDF dal tuo computer (massimo 5MB)\n3️⃣ Aspetta la conferma di caricamento\n\nQuando hai allegato tutto, controlla la domanda e clicca \"Invia\". Se hai problemi, torna qui!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"final_submission": {
				Id:     "final_submission",
				Prompt: "Perfetto! Controlla un'ultima volta tutti i dati, poi clicca \"Invia domanda\". Riceverai un numero di protocollo: conservalo! Potrai seguire la pratica nella sezione \"Le mie domande\" del sito INPS. Complimenti, hai fatto tutto da solo! 🎉",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"more_questions": {
				Id:     "more_questions",
				Prompt: "Dimmi pure cosa vuoi sapere: scrivi la tua domanda qui sotto e ti rispondo. Quando vuoi riprendere la procedura, scrivi \"domanda pensione\" e ripartiamo insieme!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"other_spid": {
				Id:     "other_spid",
				Prompt: "Gli altri provider SPID sono Aruba, Sielte, InfoCert, Lepida e TIM: trovi l'elenco completo su spid.gov.it. Ognuno ha la sua procedura online. Quando hai lo SPID, scrivi \"domanda pensione\" e continuiamo!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"help_login": {
				Id:      "help_login",
				Prompt:  "Ti aiuto con l'accesso! Ecco cosa fare:\n\n1️⃣ Inserisci email e password\n2️⃣ Se non funziona, controlla di aver scritto bene\n3️⃣ Se hai dimenticato la password, clicca \"Password dimenticata\"\n\nRiesci ad accedere ora?",
				Options: []string{"Sì, ora funziona", "No, ancora problemi", "Ho dimenticato la password"},
				Response: map[string]string{
					"Sì, ora funziona":           "Ottimo! Prima ti porto alla sezione Servizi della nostra app.",
					"No, ancora problemi":        "Nessun problema! Proviamo un altro modo.",
					"Ho dimenticato la password": "Ti aiuto a recuperarla!",
				},
				Actions: map[string][]string{
					"Sì, ora funziona": {"navigateToServices"},
				},
				Next: map[string]string{
					"Sì, ora funziona":           "navigate_to_pension",
					"No, ancora problemi":        "login_troubleshoot",
					"Ho dimenticato la password": "recover_credentials",
				},
			},
			"recover_credentials": {
				Id:      "recover_credentials",
				Prompt:  "Per recuperare la password:\n\n1️⃣ Clicca \"Password dimenticata\" nella pagina di login\n2️⃣ Inserisci la tua email\n3️⃣ Controlla la posta (anche spam)\n4️⃣ Clicca il link nell'email\n5️⃣ Crea una nuova password\n\nHai ricevuto l'email?",
				Options: []string{"Sì, ho recuperato la password", "Non arriva l'email", "Non ricordo l'email"},
				Response: map[string]string{
					"Sì, ho recuperato la password": "Perfetto! Ora prova ad accedere.",
					"Non arriva l'email":            "Controlla nella cartella spam. A volte finisce lì.",
					"Non ricordo l'email":           "Prova con le email che usi di solito: Gmail, Libero, ecc.",
				},
				Next: map[string]string{
					"Sì, ho recuperato la password": "login_step",
					"Non arriva l'email":            "email_troubleshoot",
					"Non ricordo l'email":           "email_help",
				},
			},
			"email_troubleshoot": {
				Id:     "email_troubleshoot",
				Prompt: "Se l'email non arriva:\n\n✅ Controlla la cartella spam o posta indesiderata\n✅ Aspetta qualche minuto, a volte è lenta\n✅ Riprova cliccando di nuovo \"Password dimenticata\"\n\nSe ancora nulla, chiama il supporto al numero verde. Quando hai recuperato la password, scrivi \"domanda pensione\" e continuiamo!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"email_help": {
				Id:     "email_help",
				Prompt: "Prova con gli indirizzi che usi di solito: Gmail, Libero, Virgilio, TIM. Se proprio non li ricordi, chiedi a un familiare di controllare con te oppure chiama il supporto. Quando hai ritrovato l'email, scrivi \"domanda pensione\" e ripartiamo!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"login_troubleshoot": {
				Id:      "login_troubleshoot",
				Prompt:  "Proviamo così:\n\n✅ Controlla che Caps Lock sia spento\n✅ Prova a copiare e incollare la password\n✅ Usa un browser diverso (Chrome, Firefox)\n✅ Cancella cache e cookie\n\nSe ancora non funziona, potresti aver bisogno di aiuto tecnico. Vuoi che ti dia il numero di supporto?",
				Options: []string{"Ora funziona!", "Dammi il supporto tecnico", "Riprovo più tardi"},
				Response: map[string]string{
					"Ora funziona!":             "Ottimo! Prima ti porto alla sezione Servizi della nostra app.",
					"Dammi il supporto tecnico": "Chiama il numero verde: 800-XXX-XXX (lun-ven 9-18). Sono molto gentili!",
					"Riprovo più tardi":         "Va bene! Torna quando vuoi, sono sempre qui.",
				},
				Actions: map[string][]string{
					"Ora funziona!": {"navigateToServices"},
				},
				Next: map[string]string{
					"Ora funziona!":             "navigate_to_pension",
					"Dammi il supporto tecnico": "end_support",
					"Riprovo più tardi":         "end_later",
				},
			},
			"end_success": {
				Id:       "end_success",
				Prompt:   "Sei nella pagina INPS! Clicca su \"Domanda pensione\" (che ho evidenziato) e segui le istruzioni. Se hai problemi, torna qui e chiedimi aiuto!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"end_later": {
				Id:       "end_later",
				Prompt:   "Va bene! Quando sei pronto, scrivi \"domanda pensione\" e ricominceremo da dove abbiamo lasciato. Sono sempre qui per aiutarti!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"end_poste": {
				Id:       "end_poste",
				Prompt:   "Qui trovi tutte le info per PosteID! Vai in un ufficio postale con documento e tessera sanitaria: in 10 minuti hai SPID. Poi scrivi \"domanda pensione\" e continuiamo insieme!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"end_support": {
				Id:       "end_support",
				Prompt:   "Chiama il supporto tecnico e ti aiuteranno subito! Quando hai risolto, torna qui e ricominceremo.",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
		},
	}
}

func healthBooking() Wizard {
	return Wizard{
		Id:          "health_booking",
		Name:        "Prenotazione Visita Medica",
		Description: "Ti aiuto a prenotare una visita su Puglia Salute",
		EntryStep:   "check_spid_health",
		Steps: map[string]Step{
			"check_spid_health": {
				Id:      "check_spid_health",
				Prompt:  "Per prenotare su Puglia Salute serve lo SPID. Ce l'hai?",
				Options: []string{"Sì", "No", "Non so cos'è"},
				Response: map[string]string{
					"Sì":           "Perfetto! Che tipo di visita devi prenotare?",
					"No":           "Ti spiego come ottenerlo facilmente alle Poste.",
					"Non so cos'è": "Lo SPID è la tua identità digitale per i servizi pubblici.",
				},
				Next: map[string]string{
					"Sì":           "visit_type",
					"No":           "get_spid_health",
					"Non so cos'è": "explain_spid_health",
				},
			},
			"get_spid_health": {
				Id:     "get_spid_health",
				Prompt: "Per ottenere SPID vai alle Poste con documento d'identità e tessera sanitaria: te lo attivano in 10 minuti ed è gratuito. Quando ce l'hai, scrivi \"prenotare visita\" e ti guido nella prenotazione!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"explain_spid_health": {
				Id:     "explain_spid_health",
				Prompt: "Lo SPID è la tua identità digitale: una specie di carta d'identità per internet, con cui accedi a Puglia Salute, INPS e tutti i servizi pubblici. Lo ottieni gratis alle Poste con documento e tessera sanitaria. Quando ce l'hai, scrivi \"prenotare visita\" e continuiamo!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"visit_type": {
				Id:      "visit_type",
				Prompt:  "Che tipo di visita devi prenotare?",
				Options: []string{"Visita specialistica", "Esami diagnostici", "Non sono sicuro"},
				Response: map[string]string{
					"Visita specialistica": "Ottimo! Ti porto a Puglia Salute nella sezione prenotazioni.",
					"Esami diagnostici":    "Perfetto! Ti guido alla sezione esami di Puglia Salute.",
					"Non sono sicuro":      "Nessun problema! Su Puglia Salute puoi cercare per sintomo o specialista.",
				},
				Actions: map[string][]string{
					"Visita specialistica": {"navigateToHealth", "highlightBooking"},
					"Esami diagnostici":    {"navigateToHealth", "highlightBooking"},
					"Non sono sicuro":      {"navigateToHealth", "highlightBooking"},
				},
				Next: map[string]string{
					"Visita specialistica": "end_health_success",
					"Esami diagnostici":    "end_health_success",
					"Non sono sicuro":      "end_health_success",
				},
			},
			"end_health_success": {
				Id:       "end_health_success",
				Prompt:   "Sei su Puglia Salute! Accedi con SPID e cerca la prestazione che ti serve. Se hai problemi, torna qui!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
		},
	}
}

func spidSetup() Wizard {
	return Wizard{
		Id:          "spid_setup",
		Name:        "Ottenere SPID",
		Description: "Ti guido per ottenere SPID nel modo più semplice",
		EntryStep:   "spid_method",
		Steps: map[string]Step{
			"spid_method": {
				Id:      "spid_method",
				Prompt:  "Qual è il modo più comodo per te per ottenere SPID?",
				Options: []string{"Andare alle Poste", "Online da casa", "Non so quale scegliere"},
				Response: map[string]string{
					"Andare alle Poste":      "Ottima scelta! È il modo più semplice e sicuro.",
					"Online da casa":         "Perfetto! Con PosteID puoi attivare SPID online tramite videochiamata o usando l'app PosteID. Ti serve documento d'identità valido e tessera sanitaria. Ti porto alla pagina con tutte le modalità disponibili!",
					"Non so quale scegliere": "Ti consiglio le Poste: è più semplice e ti aiutano loro.",
				},
				Next: map[string]string{
					"Andare alle Poste":      "poste_process",
					"Online da casa":         "online_process",
					"Non so quale scegliere": "poste_process",
				},
			},
			"poste_process": {
				Id:      "poste_process",
				Prompt:  "Alle Poste è semplicissimo: porti documento d'identità e tessera sanitaria, loro fanno tutto in 10 minuti. Ti porto alla pagina con tutti i dettagli?",
				Options: []string{"Sì, portami lì", "Quali documenti servono esattamente?", "Quanto costa?"},
				Response: map[string]string{
					"Sì, portami lì":                       "Ti porto alla sezione PosteID di Poste Italiane!",
					"Quali documenti servono esattamente?": "Serve documento d'identità valido e tessera sanitaria. Tutto qui!",
					"Quanto costa?":                        "PosteID è gratuito! Non paghi nulla.",
				},
				Actions: map[string][]string{
					"Sì, portami lì": {"navigateToPoste", "highlightPosteid"},
				},
				Next: map[string]string{
					"Sì, portami lì":                       "end_poste_success",
					"Quali documenti servono esattamente?": "poste_documents",
					"Quanto costa?":                        "poste_cost",
				},
			},
			"poste_documents": {
				Id:     "poste_documents",
				Prompt: "Ti servono solo due cose:\n\n📄 Documento d'identità valido (carta d'identità, patente o passaporto)\n🏷️ Tessera sanitaria\n\nNiente fotocopie, fanno tutto loro allo sportello. Quando sei pronto, vai in un ufficio postale qualsiasi!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"poste_cost": {
				Id:     "poste_cost",
				Prompt: "PosteID è completamente gratuito, allo sportello e online. Se qualcuno ti chiede soldi per attivare SPID, è una truffa! Quando sei pronto, vai alle Poste con documento e tessera sanitaria.",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"online_process": {
				Id:      "online_process",
				Prompt:  "Per attivare SPID online con PosteID hai 3 opzioni: 1) Videochiamata con operatore, 2) App PosteID con riconoscimento automatico, 3) Upload documenti online. Tutte richiedono documento d'identità e tessera sanitaria. Ti porto alla pagina PosteID?",
				Options: []string{"Sì, portami alla pagina PosteID", "Spiegami meglio le opzioni", "Preferisco andare in ufficio postale"},
				Response: map[string]string{
					"Sì, portami alla pagina PosteID":      "Ti porto alla sezione PosteID dove puoi scegliere la modalità online che preferisci!",
					"Spiegami meglio le opzioni":           "Videochiamata: parli con un operatore che verifica i tuoi documenti. App PosteID: fai selfie e foto documenti. Upload: carichi foto dei documenti e aspetti la verifica.",
					"Preferisco andare in ufficio postale": "Ottima scelta! In ufficio postale è più semplice e ti aiutano direttamente.",
				},
				Actions: map[string][]string{
					"Sì, portami alla pagina PosteID": {"navigateToPoste", "highlightPosteid"},
				},
				Next: map[string]string{
					"Sì, portami alla pagina PosteID":      "end_online_success",
					"Spiegami meglio le opzioni":           "explain_online_options",
					"Preferisco andare in ufficio postale": "poste_process",
				},
			},
			"explain_online_options": {
				Id:      "explain_online_options",
				Prompt:  "Le modalità online sono: 1) Videochiamata (più facile, parli con una persona), 2) App PosteID (automatica ma serve smartphone), 3) Upload documenti (carichi foto e aspetti). Quale preferisci?",
				Options: []string{"Videochiamata", "App PosteID", "Portami alla pagina e scelgo lì"},
				Response: map[string]string{
					"Videochiamata":                   "Ottima scelta! È come andare alle Poste ma da casa. Ti porto alla pagina per prenotare la videochiamata.",
					"App PosteID":                     "Perfetto! Scarica l'app PosteID, fai selfie e foto documenti. Ti porto alla pagina per iniziare.",
					"Portami alla pagina e scelgo lì": "Perfetto! Nella pagina PosteID trovi tutte le opzioni spiegate nel dettaglio.",
				},
				Actions: map[string][]string{
					"Videochiamata":                   {"navigateToPoste", "highlightPosteid"},
					"App PosteID":                     {"navigateToPoste", "highlightPosteid"},
					"Portami alla pagina e scelgo lì": {"navigateToPoste", "highlightPosteid"},
				},
				Next: map[string]string{
					"Videochiamata":                   "end_online_success",
					"App PosteID":                     "end_online_success",
					"Portami alla pagina e scelgo lì": "end_online_success",
				},
			},
			"end_online_success": {
				Id:       "end_online_success",
				Prompt:   "Perfetto! Sei nella pagina PosteID. Scegli la modalità online che preferisci: videochiamata, app o upload documenti. Tutte portano allo stesso risultato: il tuo SPID!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"end_poste_success": {
				Id:       "end_poste_success",
				Prompt:   "Perfetto! Qui trovi tutte le info per PosteID. Vai in un ufficio postale con documento e tessera sanitaria, e in 10 minuti hai SPID!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
		},
	}
}

func taxDeclaration() Wizard {
	return Wizard{
		Id:          "tax_declaration",
		Name:        "Dichiarazione Precompilata",
		Description: "Ti guido passo passo per la dichiarazione dei redditi precompilata",
		EntryStep:   "check_spid_tax",
		Steps: map[string]Step{
			"check_spid_tax": {
				Id:      "check_spid_tax",
				Prompt:  "Per la dichiarazione precompilata serve lo SPID per accedere al sito dell'Agenzia delle Entrate. Ce l'hai?",
				Options: []string{"Sì, ce l'ho", "No, non ce l'ho", "Cos'è la precompilata?"},
				Response: map[string]string{
					"Sì, ce l'ho":            "Perfetto! Allora possiamo procedere.",
					"No, non ce l'ho":        "Nessun problema! Il modo più semplice è andare alle Poste con documento e tessera sanitaria.",
					"Cos'è la precompilata?": "È la dichiarazione dei redditi già compilata dall'Agenzia delle Entrate con i tuoi dati: tu devi solo controllarla e confermarla!",
				},
				Next: map[string]string{
					"Sì, ce l'ho":            "choose_model",
					"No, non ce l'ho":        "get_spid_tax",
					"Cos'è la precompilata?": "explain_precompilata",
				},
			},
			"explain_precompilata": {
				Id:      "explain_precompilata",
				Prompt:  "La precompilata contiene già i tuoi redditi, le spese mediche e le detrazioni. Devi solo controllare che sia tutto giusto e inviarla: niente commercialista se i dati sono corretti! Vuoi procedere?",
				Options: []string{"Sì, procediamo", "Forse più tardi"},
				Response: map[string]string{
					"Sì, procediamo":  "Ottimo! Vediamo quale modello fa per te.",
					"Forse più tardi": "Va bene! Quando sei pronto, scrivi \"dichiarazione precompilata\" e ripartiamo.",
				},
				Next: map[string]string{
					"Sì, procediamo": "choose_model",
				},
			},
			"get_spid_tax": {
				Id:     "get_spid_tax",
				Prompt: "Vai alle Poste con documento d'identità e tessera sanitaria: ti attivano SPID in 10 minuti, gratis. Quando ce l'hai, scrivi \"dichiarazione precompilata\" e ti guido sul sito dell'Agenzia delle Entrate!",
				Terminal: true,
				Response: map[string]string{},
				Options:  []string{},
			},
			"choose_model": {
				Id:      "choose_model",
				Prompt:  "Quale modello devi presentare?\n\n• **730**: per pensionati e lavoratori dipendenti (il più comune)\n• **Redditi PF**: per chi ha partita IVA o redditi particolari\n\nQuale fa per te?",
				Options: []string{"730", "Redditi PF", "Non lo so"},
				Response: map[string]string{
					"730":        "Perfetto! Il 730 è il modello giusto per pensionati e dipendenti.",
					"Redditi PF": "Va bene! La procedura sul sito è la stessa, cambia solo il modello.",
					"Non lo so":  "Se sei pensionato o lavoratore dipendente, quasi sicuramente è il 730. Il sito comunque te lo propone da solo in base ai tuoi dati.",
				},
				Next: map[string]string{
					"730":        "go_to_agenzia",
					"Redditi PF": "go_to_agenzia",
					"Non lo so":  "go_to_agenzia",
				},
			},
			"go_to_agenzia": {
				Id:      "go_to_agenzia",
				Prompt:  "Ora ti porto alla sezione Agenzia delle Entrate. Una volta lì, clicca su \"Dichiarazione precompilata\" e poi \"Vai al sito ufficiale\". Sei pronto?",
				Options: []string{"Sì, andiamo!", "Preferisco farlo più tardi"},
				Response: map[string]string{
					"Sì, andiamo!":               "Eccellente! Ti porto alla pagina dell'Agenzia delle Entrate. Accedi con SPID e segui i passaggi.",
					"Preferisco farlo più tardi": "Va benissimo! Quando sei pronto, scrivi \"dichiarazione precompilata\" e ripartiamo da qui.",
				},
				Actions: map[string][]string{
					"Sì, andiamo!": {"navigateToTaxes", "highlightTaxDeclaration"},
				},
				Next: map[string]string{
					"Sì, andiamo!": "agenzia_guide",
				},
			},
			"agenzia_guide": {
				Id:      "agenzia_guide",
				Prompt:  "Sul sito dell'Agenzia delle Entrate:\n\n1️⃣ Clicca \"Accedi con SPID\"\n2️⃣ Entra nell'area \"Dichiarazione precompilata\"\n3️⃣ Controlla i dati: redditi, spese mediche, detrazioni\n4️⃣ Se è tutto giusto, clicca \"Accetta e invia\"\n\nCome procede?",
				Options: []string{"Tutto chiaro, sto procedendo", "I dati non sono corretti", "Non riesco ad accedere"},
				Response: map[string]string{
					"Tutto chiaro, sto procedendo": "Ottimo! Dopo l'invio riceverai la ricevuta: conservala. Complimenti! 🎉",
					"I dati non sono corretti":     "Puoi modificarli direttamente online prima dell'invio. Se hai dubbi su una spesa, meglio chiedere a un CAF.",
					"Non riesco ad accedere":       "Controlla le credenziali SPID e conferma la notifica sull'app del tuo provider. Se non funziona, torna qui e scrivi \"dichiarazione precompilata\".",
				},
			},
		},
	}
}
