package utils

import (
	"time"

	"github.com/achalesh/exhibition-manager-sub001/model"

	"gorm.io/gorm"
)

// GetDueRows rebuilds the per-booking charge/paid picture for a session from
// raw aggregates. The stored bookings.due_amount is deliberately not
// consulted here: rent comes off the booking row, electric/material/shed
// from their charge tables, paid amounts from the payments buckets.
// Material charges join on client_id, not booking_id, because
// material_issue_records are keyed per client.
func GetDueRows(db *gorm.DB, sessionID uint, q string) ([]model.DueRow, error) {
	var rows []model.DueRow

	query := `
SELECT
    b.id                                   AS booking_id,
    c.id                                   AS client_id,
    c.name                                 AS client_name,
    c.firm                                 AS firm,
    sp.number                              AS space_number,
    (b.rent_amount - b.discount)           AS rent_charge,
    COALESCE(eb.total, 0)                  AS electric_charge,
    COALESCE(mi.total, 0)                  AS material_charge,
    COALESCE(sa.total, 0) + COALESCE(sb.total, 0) AS shed_charge,
    COALESCE(p.rent, 0)                    AS rent_paid,
    COALESCE(p.electric, 0)                AS electric_paid,
    COALESCE(p.material, 0)                AS material_paid,
    COALESCE(p.shed, 0)                    AS shed_paid
FROM bookings b
JOIN clients c  ON c.id = b.client_id
JOIN spaces  sp ON sp.id = b.space_id
LEFT JOIN (
    SELECT booking_id, SUM(total_amount) AS total
    FROM electric_bills
    WHERE event_session_id = $1
    GROUP BY booking_id
) eb ON eb.booking_id = b.id
LEFT JOIN (
    SELECT client_id, SUM(total_payable) AS total
    FROM material_issue_records
    WHERE event_session_id = $1
    GROUP BY client_id
) mi ON mi.client_id = b.client_id
LEFT JOIN (
    SELECT booking_id, SUM(rent) AS total
    FROM shed_allocations
    WHERE event_session_id = $1
    GROUP BY booking_id
) sa ON sa.booking_id = b.id
LEFT JOIN (
    SELECT booking_id, SUM(amount) AS total
    FROM shed_bills
    WHERE event_session_id = $1
    GROUP BY booking_id
) sb ON sb.booking_id = b.id
LEFT JOIN (
    SELECT booking_id,
           SUM(rent_amount)     AS rent,
           SUM(electric_amount) AS electric,
           SUM(material_amount) AS material,
           SUM(shed_amount)     AS shed
    FROM payments
    WHERE event_session_id = $1
    GROUP BY booking_id
) p ON p.booking_id = b.id
WHERE b.event_session_id = $1
  AND b.booking_status = 'ACTIVE'
  AND ($2 = '' OR c.name ILIKE '%' || $2 || '%' OR c.firm ILIKE '%' || $2 || '%')
ORDER BY c.name;
`

	if err := db.Raw(query, sessionID, q).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		ComputeDues(&rows[i])
	}
	return rows, nil
}

// ComputeDues fills the due columns from charge − paid per category.
func ComputeDues(r *model.DueRow) {
	r.RentDue = Round2(r.RentCharge - r.RentPaid)
	r.ElectricDue = Round2(r.ElectricCharge - r.ElectricPaid)
	r.MaterialDue = Round2(r.MaterialCharge - r.MaterialPaid)
	r.ShedDue = Round2(r.ShedCharge - r.ShedPaid)
	r.TotalDue = Round2(r.RentDue + r.ElectricDue + r.MaterialDue + r.ShedDue)
}

// FilterDueCategory buckets rows into the five overlapping due views.
func FilterDueCategory(rows []model.DueRow, category model.DueCategory) []model.DueRow {
	out := []model.DueRow{}
	for _, r := range rows {
		var due float64
		switch category {
		case model.DueRent:
			due = r.RentDue
		case model.DueElectric:
			due = r.ElectricDue
		case model.DueMaterial:
			due = r.MaterialDue
		case model.DueShed:
			due = r.ShedDue
		default:
			due = r.TotalDue
		}
		if IsDue(due) {
			out = append(out, r)
		}
	}
	return out
}

// RecordDueMismatches compares every active booking's stored due balance
// with the aggregate recomputation and inserts a mismatch row where they
// diverge past the threshold. Existing mismatch rows for the session are
// replaced so the table reflects the latest run.
func RecordDueMismatches(db *gorm.DB, sessionID uint) (int, error) {
	rows, err := GetDueRows(db, sessionID, "")
	if err != nil {
		return 0, err
	}

	var bookings []model.Booking
	if err := db.Where("event_session_id = ? AND booking_status = ?", sessionID, model.BookingActive).Find(&bookings).Error; err != nil {
		return 0, err
	}
	stored := make(map[uint]float64, len(bookings))
	for _, b := range bookings {
		stored[b.ID] = b.DueAmount
	}

	if err := db.Where("event_session_id = ?", sessionID).Delete(&model.DueMismatch{}).Error; err != nil {
		return 0, err
	}

	found := 0
	for _, r := range rows {
		diff := Round2(stored[r.BookingID] - r.TotalDue)
		if diff > DueThreshold || diff < -DueThreshold {
			mismatch := model.DueMismatch{
				BookingID:      r.BookingID,
				StoredDue:      stored[r.BookingID],
				ComputedDue:    r.TotalDue,
				Difference:     diff,
				EventSessionID: sessionID,
			}
			if err := db.Create(&mismatch).Error; err != nil {
				return found, err
			}
			found++
		}
	}
	return found, nil
}

// GetCollectionRows lists payments with client context for the collection
// report and its CSV export.
func GetCollectionRows(db *gorm.DB, sessionID uint, from, to *time.Time) ([]model.CollectionRow, error) {
	var rows []model.CollectionRow

	query := `
SELECT
    p.receipt_no                     AS receipt_no,
    c.name                           AS client_name,
    sp.number                        AS space_number,
    p.rent_amount                    AS rent,
    p.electric_amount                AS electric,
    p.material_amount                AS material,
    p.shed_amount                    AS shed,
    (p.rent_amount + p.electric_amount + p.material_amount + p.shed_amount) AS total,
    p.method                         AS method,
    TO_CHAR(p.payment_date, 'YYYY-MM-DD') AS payment_date
FROM payments p
JOIN bookings b ON b.id = p.booking_id
JOIN clients  c ON c.id = b.client_id
JOIN spaces  sp ON sp.id = b.space_id
WHERE p.event_session_id = $1
  AND ($2::timestamptz IS NULL OR p.payment_date >= $2)
  AND ($3::timestamptz IS NULL OR p.payment_date <= $3)
ORDER BY p.payment_date DESC, p.id DESC;
`

	var fromParam, toParam interface{}
	if from != nil {
		fromParam = *from
	}
	if to != nil {
		toParam = *to
	}

	if err := db.Raw(query, sessionID, fromParam, toParam).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetStockSummary counts stock items per material name and status.
func GetStockSummary(db *gorm.DB, sessionID uint) ([]model.StockSummaryRow, error) {
	var rows []model.StockSummaryRow

	query := `
SELECT
    name,
    COUNT(*)                                              AS total,
    SUM(CASE WHEN status = 'AVAILABLE' THEN 1 ELSE 0 END) AS available,
    SUM(CASE WHEN status = 'ISSUED'    THEN 1 ELSE 0 END) AS issued,
    SUM(CASE WHEN status = 'DAMAGED'   THEN 1 ELSE 0 END) AS damaged
FROM material_stock_items
WHERE event_session_id = $1
GROUP BY name
ORDER BY name;
`

	if err := db.Raw(query, sessionID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SummarizeTransactions totals a ledger slice into income/expenditure/net.
func SummarizeTransactions(rows []model.AccountingTransaction) model.TransactionSummary {
	var s model.TransactionSummary
	for _, r := range rows {
		if r.Type == model.TxIncome {
			s.TotalIncome += r.Amount
		} else {
			s.TotalExpenditure += r.Amount
		}
	}
	s.TotalIncome = Round2(s.TotalIncome)
	s.TotalExpenditure = Round2(s.TotalExpenditure)
	s.Net = Round2(s.TotalIncome - s.TotalExpenditure)
	return s
}
