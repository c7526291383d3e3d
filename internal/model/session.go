package model

// SessionState is the per-user purchase-flow state, modeled as a sealed
// union so that illegal field combinations are unrepresentable: each step
// carries exactly the data that step has accumulated. Absence of a state
// means no purchase is in progress.
type SessionState interface {
	sessionState()
}

// SelectingCountry: a region was chosen and its country list rendered.
type SelectingCountry struct {
	RegionKey string
}

// SelectingPackage: a country was resolved and its offers fetched.
type SelectingPackage struct {
	Country Country
	Offers  []Offer
}

// SelectingDays: a daily offer was chosen; waiting for a day count.
type SelectingDays struct {
	Country Country
	Offers  []Offer
	Index   int
}

// ConfirmingPurchase: the quote was rendered. Days is zero for
// fixed-term offers.
type ConfirmingPurchase struct {
	Country Country
	Offers  []Offer
	Index   int
	Days    int
}

// PaymentProcessing: the order was placed; waiting for provisioning.
type PaymentProcessing struct {
	Country Country
	Offer   Offer
	Days    int
	OrderNo string
}

func (SelectingCountry) sessionState()   {}
func (SelectingPackage) sessionState()   {}
func (SelectingDays) sessionState()      {}
func (ConfirmingPurchase) sessionState() {}
func (PaymentProcessing) sessionState()  {}
