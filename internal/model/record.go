package model

// ConversionRecord is the persisted result of one /convert call. Records are
// append-only: never updated, deletable only by their owner.
type ConversionRecord struct {
	ID              string  `json:"record_id"`
	UserID          string  `json:"-"`
	BaseCurrency    string  `json:"base"`
	TargetCurrency  string  `json:"target"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	ConvertedAmount float64 `json:"converted_amount"`
	Date            string  `json:"date"`
}
