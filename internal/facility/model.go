package facility

// EmergencyFacility is a hospital or clinic offering urgent care.
// JSON field names match what the chat frontend renders.
type EmergencyFacility struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Procedure is a priced service at a named clinic. Used both for
// regular facility listings and for pricing cards.
type Procedure struct {
	ClinicName string `json:"clinicname"`
	Service    string `json:"service"`
	CashPrice  string `json:"cashprice"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Source     string `json:"source"`
}
