package scam

// Example is a curated email users can study to learn what phishing looks
// like. Served read-only by the content API.
type Example struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
}

// Examples returns the curated set, ordered as authored.
func Examples() []Example {
	return []Example{
		{
			Id:          "safe-1",
			Title:       "Email Legittima - Banca",
			RiskLevel:   RiskSafe,
			Description: "Email sicura da una banca reale",
			Content:     "Oggetto: Aggiornamento servizi bancari\n\nGentile Cliente,\n\nLa informiamo che il nostro servizio online sarà temporaneamente non disponibile dalle ore 02:00 alle ore 06:00 del 15 marzo 2024 per manutenzione programmata.\n\nDurante questo periodo non sarà possibile accedere all'home banking.\n\nPer qualsiasi informazione, può contattarci al numero 800-123456.\n\nCordiali saluti,\nBanca Italiana S.p.A.",
		},
		{
			Id:          "safe-2",
			Title:       "Email Legittima - Poste Italiane",
			RiskLevel:   RiskSafe,
			Description: "Email sicura da Poste Italiane",
			Content:     "Oggetto: Conferma spedizione pacchetto\n\nBuongiorno,\n\nLe confermiamo che il suo pacchetto con numero di tracciamento IT123456789 è stato consegnato con successo.\n\nIl pacchetto è stato ricevuto da: Mario Rossi\nData di consegna: 12 marzo 2024, ore 14:30\nIndirizzo: Via Roma 123, 00100 Roma\n\nGrazie per aver scelto Poste Italiane.\n\nPoste Italiane S.p.A.",
		},
		{
			Id:          "warning-1",
			Title:       "Email Sospetta - Promozione",
			RiskLevel:   RiskWarning,
			Description: "Email promozionale che potrebbe essere spam",
			Content:     "Oggetto: OFFERTA SPECIALE - Solo per te!\n\nCiao!\n\nHai vinto un premio speciale! 🎉\n\nClicca qui per riscattare il tuo regalo:\nwww.premio-gratis-italia.com\n\nAttenzione: l'offerta scade tra 24 ore!\n\nNon perdere questa opportunità unica.\n\nIl Team Promozioni",
		},
		{
			Id:          "warning-2",
			Title:       "Email Sospetta - Investimenti",
			RiskLevel:   RiskWarning,
			Description: "Email promozionale su investimenti sospetta",
			Content:     "Oggetto: Guadagna 1000€ al giorno senza rischi\n\nGentile Signore/Signora,\n\nSono un consulente finanziario e ho una proposta che non può rifiutare!\n\nI miei clienti guadagnano in media 1000€ al giorno con i nostri investimenti garantiti.\n\nPer maggiori informazioni, risponda a questa email.\n\nDr. Marco Bianchi\nConsulente Finanziario Indipendente\nTel: +39 333-1234567",
		},
		{
			Id:          "danger-1",
			Title:       "Email Scam - Phishing Banca",
			RiskLevel:   RiskDanger,
			Description: "Email di phishing che imita una banca",
			Content:     "Oggetto: URGENTE - Blocco account bancario\n\nATTENZIONE: Il suo conto bancario è stato bloccato per motivi di sicurezza.\n\nPer riattivare l'account, deve immediatamente verificare i suoi dati:\n\nClicchi su questo link: https://banca-italiana-verifica.com/login\n\nInserisca:\n- Numero di carta\n- Codice PIN\n- Codice di sicurezza\n\nSe non compila entro 2 ore, il conto verrà chiuso definitivamente.\n\nServizio Clienti Banca Italiana",
		},
		{
			Id:          "danger-2",
			Title:       "Email Scam - Premio Falso",
			RiskLevel:   RiskDanger,
			Description: "Email scam che promette premi inesistenti",
			Content:     "Oggetto: 🎉 CONGRATULAZIONI! Ha vinto 50.000€!\n\nFELICITAZIONI!\n\nÈ stato estratto come VINCITORE del nostro concorso \"Sogni d'Oro\"!\n\nHa vinto: 50.000€ in contanti!\n\nPer ricevere il premio, deve:\n\n1. Cliccare: www.concorso-premio-oro.net\n2. Inserire i suoi dati personali\n3. Pagare solo 29€ per le spese di gestione\n\nIl premio sarà trasferito entro 48 ore!\n\nATTENZIONE: Offerta valida solo 24 ore!\n\nCongratulazioni ancora!\nTeam Concorsi Italia",
		},
		{
			Id:          "danger-3",
			Title:       "Email Scam - SPID",
			RiskLevel:   RiskDanger,
			Description: "Email di phishing che imita servizi SPID",
			Content:     "Oggetto: URGENTE - Verifica identità SPID scaduta\n\nIl suo SPID scadrà tra 3 giorni.\n\nPer evitare la sospensione del servizio, deve verificare immediatamente la sua identità.\n\nClicchi qui per verificare: https://spid-verifica-identita.gov.it\n\nInserisca:\n- Codice fiscale\n- Numero di telefono\n- Codice OTP ricevuto\n\nIMPORTANTE: Se non verifica entro 24 ore, perderà l'accesso a tutti i servizi pubblici.\n\nAgenzia per l'Italia Digitale",
		},
		{
			Id:          "danger-4",
			Title:       "Email Scam - INPS",
			RiskLevel:   RiskDanger,
			Description: "Email di phishing che imita INPS",
			Content:     "Oggetto: ERRORE nel calcolo della pensione - Azione richiesta\n\nGentile Iscritto,\n\nÈ stato rilevato un errore nel calcolo della sua pensione.\n\nPotrebbe aver ricevuto pagamenti non dovuti per un importo di 2.847€.\n\nPer risolvere il problema:\n\n1. Acceda al link: https://inps-pensione-correzione.it\n2. Scarichi il modulo di rettifica\n3. Inserisca i suoi dati bancari per il rimborso\n\nSe non agisce entro 7 giorni, verrà avviata una procedura legale.\n\nINPS - Istituto Nazionale Previdenza Sociale",
		},
		{
			Id:          "danger-5",
			Title:       "Email Scam - Amazon",
			RiskLevel:   RiskDanger,
			Description: "Email di phishing che imita Amazon",
			Content:     "Oggetto: Problema con il suo ordine #123456789\n\nCaro Cliente Amazon,\n\nIl suo ordine recente non può essere elaborato a causa di un problema con il metodo di pagamento.\n\nPer completare l'ordine:\n\n1. Clicchi: https://amazon-verifica-pagamento.com\n2. Inserisca i dati della carta\n3. Confermi l'ordine\n\nIMPORTANTE: Se non agisce entro 2 ore, l'ordine verrà annullato.\n\nAmazon Italia\nServizio Clienti",
		},
		{
			Id:          "safe-3",
			Title:       "Email Legittima - Comune",
			RiskLevel:   RiskSafe,
			Description: "Email sicura da un comune",
			Content:     "Oggetto: Avviso servizio TARI 2024\n\nGentile Cittadino,\n\nLe comunichiamo che è disponibile il nuovo avviso di pagamento TARI per l'anno 2024.\n\nPuò consultare e pagare l'importo accedendo al portale del Comune:\nwww.comune.roma.it/servizi-online\n\nImporto dovuto: € 287,50\nScadenza: 31 marzo 2024\n\nPer informazioni: 06-1234567\n\nUfficio Tributi\nComune di Roma",
		},
	}
}
