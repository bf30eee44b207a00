package model

// DueRow is one exhibitor line of the due-list report, rebuilt from raw
// aggregates across rent, electric, material and shed charge sources.
type DueRow struct {
	BookingID      uint    `json:"bookingId"`
	ClientID       uint    `json:"clientId"`
	ClientName     string  `json:"clientName"`
	Firm           string  `json:"firm"`
	SpaceNumber    string  `json:"spaceNumber"`
	RentCharge     float64 `json:"rentCharge"`
	ElectricCharge float64 `json:"electricCharge"`
	MaterialCharge float64 `json:"materialCharge"`
	ShedCharge     float64 `json:"shedCharge"`
	RentPaid       float64 `json:"rentPaid"`
	ElectricPaid   float64 `json:"electricPaid"`
	MaterialPaid   float64 `json:"materialPaid"`
	ShedPaid       float64 `json:"shedPaid"`
	RentDue        float64 `json:"rentDue"`
	ElectricDue    float64 `json:"electricDue"`
	MaterialDue    float64 `json:"materialDue"`
	ShedDue        float64 `json:"shedDue"`
	TotalDue       float64 `json:"totalDue"`
}

// DueCategory selects which bucket of the due list a view returns.
type DueCategory string

const (
	DueAll      DueCategory = "all"
	DueRent     DueCategory = "rent"
	DueElectric DueCategory = "electric"
	DueMaterial DueCategory = "material"
	DueShed     DueCategory = "shed"
)

type TransactionSummary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenditure float64 `json:"totalExpenditure"`
	Net              float64 `json:"net"`
}

type CollectionRow struct {
	ReceiptNo   string  `json:"receiptNo"`
	ClientName  string  `json:"clientName"`
	SpaceNumber string  `json:"spaceNumber"`
	Rent        float64 `json:"rent"`
	Electric    float64 `json:"electric"`
	Material    float64 `json:"material"`
	Shed        float64 `json:"shed"`
	Total       float64 `json:"total"`
	Method      string  `json:"method"`
	PaymentDate string  `json:"paymentDate"`
}

type StockSummaryRow struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Issued    int    `json:"issued"`
	Damaged   int    `json:"damaged"`
}
