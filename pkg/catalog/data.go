package catalog

// Default returns the authored service directory.
func Default() *Catalog {
	return New([]Service{
		{
			Id:          "inps",
			Name:        "Pensioni (INPS)",
			Description: "Accedi ai principali servizi pensionistici dell'INPS: presentare domande di pensione, richiedere indennità e informazioni su assistenza domiciliare.",
			Icon:        "/inps.png",
			Operations: []Operation{
				{
					Name:        "Domanda pensione",
					Label:       "Domanda pensione",
					Url:         "https://www.inps.it/it/it/previdenza/domanda-di-pensione.html",
					Description: "Per presentare la domanda di pensione accedi al sito INPS con SPID, CIE o CNS. Nella sezione 'Domanda di pensione' compila i campi richiesti con i tuoi dati anagrafici e contributivi. Se richiesto, allega documenti in formato digitale (PDF). Al termine invia la domanda e conserva la ricevuta di inoltro come prova.",
					Tips: []string{
						"Se non hai SPID, puoi richiederlo attraverso PosteID o un altro identity provider; per molte persone la modalità in ufficio postale è la più semplice.",
						"Puoi svolgere tutta la procedura da casa se sai usare lo SPID; altrimenti chiedi aiuto a un familiare o al CAF per la prima volta.",
						"Tieni a portata di mano documento d'identità, codice fiscale e certificazioni utili.",
					},
				},
				{
					Name:        "Indennità di accompagnamento agli invalidi civili",
					Label:       "Indennità di accompagnamento agli invalidi civili",
					Url:         "https://www.inps.it/it/it/dettaglio-approfondimento.schede-informative.indennit-di-accompagnamento-agli-invalidi-civili.html",
					Description: "Per richiedere l'indennità di accompagnamento accedi al portale INPS e cerca la sezione dedicata alle prestazioni per invalidità civile. Compila la domanda online e allega la documentazione medica richiesta. Dopo l'invio, conserva il numero di protocollo.",
					Tips: []string{
						"Questa pratica è più semplice se ti fai assistere da un patronato o CAF perché richiede documenti medici specifici.",
						"Prepara in anticipo tutte le certificazioni richieste dal medico o dalla ASL.",
					},
				},
				{
					Name:        "Assistenza domiciliare per non autosufficienti",
					Label:       "Assistenza domiciliare per non autosufficienti",
					Url:         "#",
					Description: "La richiesta di assistenza domiciliare (es. Home Care) prevede l'accesso al portale INPS e la compilazione della domanda dedicata, allegando la documentazione sanitaria. Alcune fasi richiedono l'intervento dell'ASL locale per le valutazioni mediche.",
					Tips: []string{
						"Contatta preventivamente il medico di base per raccogliere la documentazione necessaria.",
						"Spesso è utile farsi affiancare da un patronato per la presentazione completa della pratica.",
					},
				},
			},
		},
		{
			Id:          "inail",
			Name:        "INAIL",
			Description: "Servizi relativi a infortuni sul lavoro e prestazioni economiche.",
			Icon:        "/inail.png",
			Operations: []Operation{
				{
					Name:        "Denuncia infortunio",
					Label:       "Denuncia infortunio",
					Url:         "https://www.inail.it/portale/assicurazione/it/Datore-di-Lavoro/Impresa-Settore-Navigazione/denunce-infortuni-e-malattie-professionali-impresa-settore-navigazione/denuncia-comunicazione-di-infortunio-sul-lavoro-impresa-settore-navigazione.html",
					Description: "La denuncia di infortunio va effettuata tramite il portale INAIL: accedi con le credenziali richieste e compila il modulo con i dati dell'infortunio e della persona coinvolta, allegando i certificati medici se disponibili. Il datore di lavoro solitamente ha l'obbligo di inviare la denuncia, ma il cittadino può verificare lo stato della pratica online.",
					Tips: []string{
						"Se sei lavoratore, informa subito il datore di lavoro; spesso è il datore che procede con la denuncia.",
						"Per dubbi tecnici, rivolgiti a un patronato per assistenza nella compilazione.",
					},
				},
				{
					Name:        "Consultazione pratiche",
					Label:       "Consultazione pratiche",
					Url:         "https://www.inail.it/portale/assicurazione/it/lassicurazione-inail/quali-sono-le-prestazioni-di-inail/prestazioni-economiche.html",
					Description: "Dal portale INAIL è possibile consultare lo stato delle pratiche e le prestazioni economiche. Accedi al tuo profilo, cerca la sezione dedicata alle pratiche e verifica eventuali aggiornamenti o documenti disponibili.",
					Tips: []string{
						"La consultazione è rapida e può essere fatta da casa.",
						"Conserva numeri di pratica o codice identificativo per ricerche veloci.",
					},
				},
			},
		},
		{
			Id:          "poste",
			Name:        "Poste Italiane",
			Description: "Servizi postali e digitali, inclusi cedolini e identificazione PosteID.",
			Icon:        "/poste.png",
			Operations: []Operation{
				{
					Name:        "Richiesta cedolino pensione",
					Label:       "Richiesta cedolino pensione",
					Url:         "https://www.poste.it/polis-inps/cedolino-pensione/",
					Description: "Per vedere il cedolino della pensione accedi al sito di Poste (sezione Polis/INPS) e autenticati con PosteID o SPID. Nella sezione dedicata potrai visualizzare e scaricare il tuo cedolino in PDF.",
					Tips: []string{
						"Puoi fare questa operazione comodamente da casa.",
						"Se non hai SPID, attiva PosteID in ufficio postale per una procedura assistita.",
					},
				},
				{
					Name:        "PosteID (attivazione SPID tramite Poste)",
					Label:       "PosteID (attivazione SPID tramite Poste)",
					Url:         "https://posteid.poste.it/identificazione/identificazione.shtml",
					Description: "Per attivare lo SPID tramite Poste puoi utilizzare PosteID: scegli la modalità di riconoscimento (online con documento, videochiamata o recandoti in ufficio postale) e segui la procedura guidata. Dopo il riconoscimento potrai utilizzare SPID per accedere ai servizi della PA.",
					Tips: []string{
						"Il riconoscimento in ufficio postale è la modalità più semplice per chi non usa lo smartphone.",
						"La procedura richiede documento di identità e tessera sanitaria.",
					},
				},
				{
					Name:        "Pagamenti online",
					Label:       "Pagamenti online",
					Url:         "https://www.poste.it/paga-online/",
					Description: "Con Poste puoi effettuare vari pagamenti online (bollettini, F24, multe). Accedi con PosteID o SPID, seleziona la tipologia di pagamento, inserisci i dati richiesti e conferma con il codice OTP ricevuto sul cellulare.",
					Tips: []string{
						"Tieni a portata di mano i dati del bollettino o della tassa.",
						"Se non sei pratico con pagamenti online, chiedi a un familiare o vai allo sportello per una prima spiegazione.",
					},
				},
			},
		},
		{
			Id:          "fisco",
			Name:        "Agenzia delle Entrate",
			Description: "Servizi fiscali: cassetto fiscale, dichiarazione precompilata, invio documenti.",
			Icon:        "/agenziaEntrate.png",
			Operations: []Operation{
				{
					Name:        "Cassetto fiscale",
					Label:       "Cassetto fiscale",
					Url:         "https://www.agenziaentrate.gov.it/portale/servizi/servizitrasversali/altri/cassetto-fiscale",
					Description: "Il Cassetto fiscale è l'area riservata dove puoi consultare dati fiscali, dichiarazioni e documenti. Accedi con SPID, CIE o CNS e naviga tra le sezioni per scaricare o stampare quanto necessario.",
					Tips: []string{
						"La consultazione è semplice da casa; porta con te eventuali documenti se devi integrare informazioni.",
					},
				},
				{
					Name:        "Dichiarazione precompilata",
					Label:       "Dichiarazione precompilata",
					Url:         "https://www.agenziaentrate.gov.it/portale/schede/dichiarazioni/dichiarazione-precompilata/accedi-alla-tua-precompilata",
					Description: "Accedi alla dichiarazione dei redditi precompilata con SPID per visualizzare i dati a disposizione e, se necessario, integrare o correggere prima dell'invio. Segui le istruzioni a schermo per confermare o inviare la dichiarazione.",
					Tips: []string{
						"Se hai dubbi o la dichiarazione è complessa, rivolgiti a un CAF o a un professionista.",
						"Controlla con attenzione i dati precompilati prima dell'invio.",
					},
				},
				{
					Name:        "Consegna documenti e istanze",
					Label:       "Consegna documenti e istanze",
					Url:         "https://www.agenziaentrate.gov.it/portale/consegna-documenti",
					Description: "Il servizio consente di inviare digitalmente documenti e istanze all'Agenzia. Dopo l'accesso carica i file richiesti (meglio in PDF) e invia la pratica seguendo le istruzioni a schermo.",
					Tips: []string{
						"Prepara i documenti in PDF prima di iniziare la procedura.",
					},
				},
			},
		},
		{
			Id:          "sanita",
			Name:        "Sanità (Puglia Salute)",
			Description: "Servizi sanitari digitali della Regione Puglia: prenotazioni, referti, vaccini.",
			Icon:        "/pugliasalute.png",
			Operations: []Operation{
				{
					Name:        "Gestione prenotazioni",
					Label:       "Gestione prenotazioni",
					Url:         "https://www.sanita.puglia.it/disdetta-prenotazioni",
					Description: "Attraverso Puglia Salute puoi gestire o disdire prenotazioni di visite o esami. Accedi con SPID e cerca la sezione dedicata per inserire il codice della prenotazione o cercare l'appuntamento da modificare.",
					Tips: []string{
						"Servizio semplice da usare da casa. Tieni a portata di mano il codice CUP o la data della prenotazione.",
					},
				},
				{
					Name:        "Pagamento ticket",
					Label:       "Pagamento ticket",
					Url:         "https://www.sanita.puglia.it/pagamento-ticket1",
					Description: "Il pagamento del ticket può essere effettuato online dal portale. Dopo l'autenticazione inserisci i dati richiesti e completa il pagamento tramite i metodi disponibili.",
					Tips: []string{
						"Puoi pagare da casa senza recarti allo sportello.",
					},
				},
				{
					Name:        "Referto on-line",
					Label:       "Referto on-line",
					Url:         "https://www.sanita.puglia.it/referto-online",
					Description: "Accedi con SPID per visualizzare e scaricare i referti delle prestazioni sanitarie.",
					Tips: []string{
						"Comodo per evitare spostamenti in ospedale.",
					},
				},
				{
					Name:        "Diario Vaccinazioni",
					Label:       "Diario Vaccinazioni",
					Url:         "https://www.sanita.puglia.it/diario-vaccinazioni-con-autenticazione",
					Description: "Il diario vaccinale mostra lo storico delle vaccinazioni effettuate e permette di scaricare certificati, previa autenticazione.",
					Tips: []string{
						"Operazione fattibile da casa se hai SPID.",
					},
				},
				{
					Name:        "Scelta/Revoca Medico",
					Label:       "Scelta/Revoca Medico",
					Url:         "https://www.sanita.puglia.it/scelta-e-revoca-medico",
					Description: "Dal portale puoi scegliere o revocare il medico di base: accedi e segui la procedura guidata nella sezione dedicata.",
					Tips: []string{
						"In alcuni casi è possibile anche recarsi direttamente alla ASL per assistenza.",
					},
				},
			},
		},
		{
			Id:          "bcc",
			Name:        "BCC Bari e Taranto",
			Description: "Servizi bancari e home banking della BCC Bari e Taranto.",
			Icon:        "/bcc.png",
			Operations: []Operation{
				{
					Name:        "Trasparenza",
					Label:       "Trasparenza",
					Url:         "https://www.bancabaritaranto.it/template/default.asp?i_menuID=70784",
					Description: "Nella sezione Trasparenza puoi consultare documenti informativi, fogli informativi e contratti relativi ai prodotti bancari. È prevalentemente consultazione di documenti pubblici.",
					Tips: []string{
						"Non richiede autenticazione per la maggior parte dei documenti. Puoi consultare e stampare a piacere.",
					},
				},
				{
					Name:        "Registrazione RelaxBanking",
					Label:       "Registrazione RelaxBanking",
					Url:         "https://www.relaxbanking.it/v3/relaxbanking/#/funzionalita",
					Description: "Per usare RelaxBanking devi avere un conto presso la BCC: segui la procedura di registrazione indicata sul sito o fatti assistere in filiale per l'attivazione dell'homebanking.",
					Tips: []string{
						"Se non sei pratico, attiva il servizio direttamente in filiale con la guida di un impiegato bancario.",
					},
				},
			},
		},
	})
}
