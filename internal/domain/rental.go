package domain

// RentalRecord is the result of a phone-number lookup against the rental
// worksheet. All pointer fields are nil when no active rental exists for the
// queried number; that is a normal outcome, not an error.
type RentalRecord struct {
	RenterName  *string `json:"renter_name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	ProductName *string `json:"product_name"`
	IsReturned  bool    `json:"is_returned"`
}

// Found reports whether the record describes an actual worksheet row.
func (r *RentalRecord) Found() bool {
	return r.RenterName != nil || r.StartDate != nil || r.EndDate != nil || r.ProductName != nil
}
