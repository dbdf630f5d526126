package models

// Transaction is a normalized financial event pulled from the provider's
// transaction feed and stored locally.
//
// Amount and Category are opaque pass-through values: the sign convention
// (positive = money out) and the category taxonomy are defined by the
// provider and not validated here.
type Transaction struct {
	// ID is the internal surrogate key assigned by the database.
	ID int64 `json:"-"`

	// UserID is the internal identifier of the owning user.
	UserID int64 `json:"userId"`

	// TransactionID is the provider-assigned natural key of this event.
	// Together with UserID it uniquely identifies a stored record, which is
	// what makes repeated syncs idempotent.
	TransactionID string `json:"transactionId"`

	// Name is the merchant or transaction label reported by the provider.
	Name string `json:"name"`

	// Amount is the signed transaction amount in currency units.
	Amount float64 `json:"amount"`

	// Category is the provider's category path, most general first.
	Category []string `json:"category"`

	// Date is the transaction's calendar date in YYYY-MM-DD form.
	// There is no time-of-day component.
	Date string `json:"date"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
