package usecases

import "fantera.backend/internal/domain/entities"

// clubMetadata holds editorial context keyed by exchange ticker. Tickers not
// listed here fall back to defaultClubMetadata.
var clubMetadata = map[string]entities.ClubMetadata{
	"JUVE.MI": {
		Country:       "Italy",
		League:        "Serie A",
		MarketContext: "Italy's most successful club with 36 league titles. Listed on the Borsa Italiana, Juventus is one of only a handful of publicly traded football clubs in the world.",
	},
	"BVB.DE": {
		Country:       "Germany",
		League:        "Bundesliga",
		MarketContext: "Germany's second-largest club by revenue, famous for the 'Yellow Wall' at Signal Iduna Park. Listed on the Frankfurt Stock Exchange since 2000.",
	},
	"AJAX.AS": {
		Country:       "Netherlands",
		League:        "Eredivisie",
		MarketContext: "Amsterdam's legendary club, known for its youth academy and Total Football philosophy. Listed on Euronext Amsterdam.",
	},
	"SLB.LS": {
		Country:       "Portugal",
		League:        "Primeira Liga",
		MarketContext: "Portugal's most decorated club with 38 league titles and two European Cups. Listed on the Euronext Lisbon exchange.",
	},
	"FCP.LS": {
		Country:       "Portugal",
		League:        "Primeira Liga",
		MarketContext: "Two-time Champions League winners and Portugal's dominant European competitor. Listed on Euronext Lisbon.",
	},
	"SCP.LS": {
		Country:       "Portugal",
		League:        "Primeira Liga",
		MarketContext: "One of Portugal's 'Big Three', famous for developing world-class talent including Cristiano Ronaldo. Listed on Euronext Lisbon.",
	},
	"SCB.LS": {
		Country:       "Portugal",
		League:        "Primeira Liga",
		MarketContext: "The 'Warriors of Minho', a rising force in Portuguese football with European ambitions. Listed on Euronext Lisbon.",
	},
	"SSL.MI": {
		Country:       "Italy",
		League:        "Serie A",
		MarketContext: "Rome-based club with a passionate fanbase and a legacy in Italian football. Listed on the Borsa Italiana.",
	},
	"ASR.MI": {
		Country:       "Italy",
		League:        "Serie A",
		MarketContext: "The 'Giallorossi', Roma is one of Italy's most followed clubs with a storied European history. Listed on the Borsa Italiana.",
	},
	"OLG.PA": {
		Country:       "France",
		League:        "Ligue 1",
		MarketContext: "France's most successful club in European competition with seven league titles. Listed on Euronext Paris.",
	},
	"CCP.L": {
		Country:       "Scotland",
		League:        "Scottish Premiership",
		MarketContext: "Glasgow's green and white, one of the most iconic clubs in world football. Listed on the London Stock Exchange.",
	},
	"PARKEN.CO": {
		Country:       "Denmark",
		League:        "Superliga",
		MarketContext: "Denmark's dominant club and regular Champions League participant. Listed on the Copenhagen Stock Exchange.",
	},
	"GSRAY.IS": {
		Country:       "Turkey",
		League:        "Super Lig",
		MarketContext: "Turkey's most successful club with a record 24 league titles and passionate global fanbase. Listed on Borsa Istanbul.",
	},
	"MANU": {
		Country:       "England",
		League:        "Premier League",
		MarketContext: "One of the most valuable and widely followed football clubs in the world. Listed on the New York Stock Exchange since 2012.",
	},
	"TICA.MX": {
		Country:       "Mexico",
		League:        "Liga MX",
		MarketContext: "Mexico's most successful club with 14 league titles, nicknamed 'Las Aguilas'. Part of the Televisa group, listed on BMV Mexico.",
	},
}

var defaultClubMetadata = entities.ClubMetadata{
	Country:       "Unknown",
	League:        "Unknown",
	MarketContext: "A publicly traded football club available for fractional ownership on Fantera.",
}

// GetClubMetadata returns editorial metadata for a ticker, total over input.
func GetClubMetadata(ticker string) entities.ClubMetadata {
	if meta, ok := clubMetadata[ticker]; ok {
		return meta
	}
	return defaultClubMetadata
}

var exchangeCurrency = map[string]string{
	"Borsa Italiana":     "€",
	"Frankfurt SE":       "€",
	"Euronext Amsterdam": "€",
	"Euronext Lisbon":    "€",
	"Euronext Paris":     "€",
	"London SE":          "£",
	"Copenhagen SE":      "kr ",
	"Borsa Istanbul":     "₺",
	"NYSE":               "$",
	"BMV Mexico":         "MX$",
}

// GetCurrencySymbol maps an exchange name to its display currency symbol,
// defaulting to the dollar sign for unknown exchanges.
func GetCurrencySymbol(exchange string) string {
	if symbol, ok := exchangeCurrency[exchange]; ok {
		return symbol
	}
	return "$"
}
