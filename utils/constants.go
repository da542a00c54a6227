package utils

const (
	// Deal types
	DealTypePurchase = "purchase"
	DealTypeSale     = "sale"

	// Tax types
	TaxTypeExclusive = "exclusive"
	TaxTypeInclusive = "inclusive"

	// Transaction directions
	DirectionReceived = "received"
	DirectionPaid     = "paid"

	// Commodities with milling semantics
	CommodityPaddy      = "paddy"
	CommodityRice       = "rice"
	CommodityBrokenRice = "broken_rice"

	// Weight units
	UnitKg      = "kg"
	UnitQuintal = "quintal"
	UnitTon     = "ton"

	// Conversion factors
	KgPerQuintal   = 100.0
	QuintalsPerTon = 10.0

	// Standard paddy to rice milling yield
	DefaultMillingRatio = 0.67

	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrFailedToStore    = "Failed to store data"
	ErrFailedToRetrieve = "Failed to retrieve data"
	ErrMillRequired     = "X-Mill-ID header is required"

	// Header carrying the mill tenant
	MillHeader = "X-Mill-ID"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Largest amount accepted by the calculators
	MaxAmount = 1e15

	// Symbol prefixed by FormatCurrency
	RupeeSymbol = "₹"
)

// Commodities traded by a mill
var Commodities = []string{CommodityPaddy, CommodityRice, CommodityBrokenRice, "bran", "husk", "gunny"}

// GSTRates are the slabs accepted on deals
var GSTRates = []float64{0, 5, 12, 18, 28}

// PaymentModes accepted on transactions
var PaymentModes = []string{"cash", "bank", "upi", "cheque"}
