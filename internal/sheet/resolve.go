package sheet

import (
	"rentdesk-backend/internal/domain"
)

// Worksheet column names the resolver depends on. These must match the
// remote header text exactly; a rename upstream surfaces as a SchemaError.
const (
	ColContact1   = "연락처1"
	ColContact2   = "연락처2"
	ColRenterName = "수취인명"
	ColStartDate  = "시작일"
	ColEndDate    = "종료일"
	ColProduct    = "제품명"
	ColReturnDate = "반납완료일"
)

var requiredColumns = []string{
	ColContact1, ColContact2, ColRenterName, ColStartDate, ColEndDate, ColProduct,
}

// Resolve scans a snapshot for the active rental belonging to a phone number.
//
// Rows are scanned in reverse insertion order so that repeat renters resolve
// to their most recently appended row. A row whose return-date cell is
// non-empty is a closed rental and never matches, even on the right phone.
// No qualifying row yields an all-nil record, which is a success, not an
// error.
func Resolve(snap *Snapshot, phone string) (*domain.RentalRecord, error) {
	contact1Idx, ok := snap.Column(ColContact1)
	if !ok {
		return nil, &SchemaError{Column: ColContact1}
	}
	contact2Idx, ok := snap.Column(ColContact2)
	if !ok {
		return nil, &SchemaError{Column: ColContact2}
	}
	nameIdx, ok := snap.Column(ColRenterName)
	if !ok {
		return nil, &SchemaError{Column: ColRenterName}
	}
	startIdx, ok := snap.Column(ColStartDate)
	if !ok {
		return nil, &SchemaError{Column: ColStartDate}
	}
	endIdx, ok := snap.Column(ColEndDate)
	if !ok {
		return nil, &SchemaError{Column: ColEndDate}
	}
	productIdx, ok := snap.Column(ColProduct)
	if !ok {
		return nil, &SchemaError{Column: ColProduct}
	}
	// The return-date column is optional; without it every row counts as an
	// open rental.
	returnIdx, hasReturnCol := snap.Column(ColReturnDate)

	normalized := NormalizePhone(phone)

	for i := len(snap.Rows) - 1; i >= 0; i-- {
		row := snap.Rows[i]

		contact1 := NormalizePhone(cellAt(row, contact1Idx).String())
		contact2 := NormalizePhone(cellAt(row, contact2Idx).String())
		if normalized == "" || (normalized != contact1 && normalized != contact2) {
			continue
		}

		if hasReturnCol && !cellAt(row, returnIdx).Empty() {
			// Returned already; keep scanning for an older open rental.
			continue
		}

		name := cellAt(row, nameIdx).String()
		start := DecodeDate(cellAt(row, startIdx))
		end := DecodeDate(cellAt(row, endIdx))
		product := cellAt(row, productIdx).String()
		return &domain.RentalRecord{
			RenterName:  &name,
			StartDate:   &start,
			EndDate:     &end,
			ProductName: &product,
		}, nil
	}

	// No active rental for this phone.
	return &domain.RentalRecord{}, nil
}
