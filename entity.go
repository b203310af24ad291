package findoc

// EntityType classifies a recognized financial entity.
type EntityType string

const (
	EntityCompany         EntityType = "company"
	EntitySecurity        EntityType = "security"
	EntityFinancialMetric EntityType = "financialMetric"
	EntityAssetClass      EntityType = "assetClass"
)

// Confidence assigned by each recognition source. Structured table data is
// always trusted more than free-text matches.
const (
	confTable    = 0.95
	confTextISIN = 0.8
	confCompany  = 0.7
	enrichBonus  = 0.1
)

// Entity is one financial entity recognized in a document. All value fields
// are kept as the raw strings found in the document; Confidence says how
// much the engine trusts the record, and Source records where an enriched
// field came from.
type Entity struct {
	Type        EntityType `json:"type"`
	Name        string     `json:"name,omitempty"`
	ISIN        string     `json:"isin,omitempty"`
	Ticker      string     `json:"ticker,omitempty"`
	Quantity    string     `json:"quantity,omitempty"`
	Price       string     `json:"price,omitempty"`
	MarketValue string     `json:"marketValue,omitempty"`
	Allocation  string     `json:"allocation,omitempty"`
	Confidence  float64    `json:"confidence"`
	Source      string     `json:"source,omitempty"`
}
