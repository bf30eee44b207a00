package helper

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound     = errors.New("stock item not found")
	ErrItemNotAvailable = errors.New("item is not available")
	ErrItemNotIssued    = errors.New("item is not issued")
)

// Fixed overage prices and free quotas for billable furniture kinds.
const (
	TablePrice = 600
	ChairPrice = 100

	FreeTablesPavilion = 2
	FreeTablesDefault  = 1
	FreeChairs         = 2
)

// FreeLimit returns how many items of this kind a client gets for free.
// Pavilion bookings get a second free table. Non-billable kinds have no
// limit to speak of.
func FreeLimit(itemName, spaceType string) int {
	switch strings.ToLower(itemName) {
	case "table":
		if strings.EqualFold(spaceType, "pavilion") {
			return FreeTablesPavilion
		}
		return FreeTablesDefault
	case "chair":
		return FreeChairs
	}
	return 0
}

// UnitPrice returns the overage price per item, 0 for kinds that are never
// billed.
func UnitPrice(itemName string) float64 {
	switch strings.ToLower(itemName) {
	case "table":
		return TablePrice
	case "chair":
		return ChairPrice
	}
	return 0
}

func IsBillableKind(itemName string) bool {
	name := strings.ToLower(itemName)
	return name == "table" || name == "chair"
}

// OverFreeLimit decides free vs billed for the next issuance, given how many
// same-kind items the client already has out.
func OverFreeLimit(issuedCount, limit int) bool {
	return issuedCount >= limit
}

// NormalizeReturnStatus maps a scanned return status onto the two accepted
// outcomes; anything that is not DAMAGED means back to AVAILABLE.
func NormalizeReturnStatus(status string) string {
	if strings.EqualFold(strings.TrimSpace(status), model.ItemDamaged) {
		return model.ItemDamaged
	}
	return model.ItemAvailable
}

// MakeUniqueID builds the human-readable stock ID: first letter of the
// material name + 3-letter location code + zero-padded sequence (TMAI0007).
func MakeUniqueID(name, locationCode string, seq int) string {
	prefix := MakePrefix(name, locationCode)
	return fmt.Sprintf("%s%04d", prefix, seq)
}

func MakePrefix(name, locationCode string) string {
	first := ""
	for _, r := range strings.TrimSpace(name) {
		first = strings.ToUpper(string(r))
		break
	}
	return first + strings.ToUpper(locationCode)
}

// AssetSuffix extracts the sequence digits at the end of a unique ID; this
// is what the consolidated issue record stores in its numbers columns.
func AssetSuffix(uniqueID string) string {
	i := len(uniqueID)
	for i > 0 && uniqueID[i-1] >= '0' && uniqueID[i-1] <= '9' {
		i--
	}
	return uniqueID[i:]
}

// AppendNumber adds a suffix to a comma-joined asset-number list.
func AppendNumber(list, suffix string) string {
	if list == "" {
		return suffix
	}
	return list + "," + suffix
}

// ContainsNumber reports whether the comma-joined list holds the exact
// suffix (not a substring of a longer entry).
func ContainsNumber(list, suffix string) bool {
	if list == "" {
		return false
	}
	for _, n := range strings.Split(list, ",") {
		if n == suffix {
			return true
		}
	}
	return false
}

// StripNumber removes one occurrence of the suffix from the comma-joined
// list, leaving any remaining entries joined as before.
func StripNumber(list, suffix string) string {
	if list == "" {
		return ""
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	removed := false
	for _, n := range parts {
		if !removed && n == suffix {
			removed = true
			continue
		}
		out = append(out, n)
	}
	return strings.Join(out, ",")
}

// NextSequence finds the next free sequence number under a unique-ID
// prefix. Starts at count+1 and probes forward past holes left by deleted
// items.
func NextSequence(tx *gorm.DB, prefix string) int {
	var count int64
	tx.Model(&model.MaterialStockItem{}).
		Where("unique_id LIKE ?", prefix+"%").
		Count(&count)

	seq := int(count) + 1
	for {
		var exists int64
		tx.Model(&model.MaterialStockItem{}).
			Where("unique_id = ?", fmt.Sprintf("%s%04d", prefix, seq)).
			Count(&exists)
		if exists == 0 {
			return seq
		}
		seq++
	}
}

// CreateStockItems bulk-creates quantity items with sequential unique IDs
// and a QR PNG each. Every iteration commits on its own: a failure midway
// leaves the earlier items in place (no batch atomicity), and a failed QR
// write is logged but does not undo the row.
func CreateStockItems(db *gorm.DB, sessionID uint, name, locationCode string, quantity int) ([]model.MaterialStockItem, error) {
	created := []model.MaterialStockItem{}
	prefix := MakePrefix(name, locationCode)

	for i := 0; i < quantity; i++ {
		seq := NextSequence(db, prefix)
		item := model.MaterialStockItem{
			Name:           name,
			UniqueID:       MakeUniqueID(name, locationCode, seq),
			LocationCode:   strings.ToUpper(locationCode),
			Status:         model.ItemAvailable,
			EventSessionID: sessionID,
		}
		if err := db.Create(&item).Error; err != nil {
			return created, err
		}
		if _, err := utils.SaveQRCode(item.UniqueID, 300); err != nil {
			log.Printf("QR write failed for %s: %v", item.UniqueID, err)
		}
		created = append(created, item)
	}
	return created, nil
}

// IssueItem transitions an AVAILABLE item to ISSUED for a client, applying
// the free-quota/overage pricing for tables and chairs, and folds the
// result into the client's consolidated issue record for today plus the
// active booking's due balance. All row mutations commit or roll back as
// one transaction.
func IssueItem(db *gorm.DB, uniqueID string, clientID uint, sessionID uint) (model.ScanEvent, error) {
	var event model.ScanEvent

	tx := db.Begin()
	if tx.Error != nil {
		return event, tx.Error
	}

	var item model.MaterialStockItem
	if err := tx.Where("unique_id = ?", uniqueID).First(&item).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event, ErrItemNotFound
		}
		return event, err
	}
	if item.Status != model.ItemAvailable {
		tx.Rollback()
		return event, ErrItemNotAvailable
	}

	billed := false
	price := 0.0
	var booking *model.Booking
	if IsBillableKind(item.Name) {
		booking, _ = ActiveBookingForClient(tx, clientID, sessionID)
		spaceType := ""
		if booking != nil {
			spaceType = booking.Space.Type
		}
		limit := FreeLimit(item.Name, spaceType)

		// Items of the same kind already out with this client decide
		// whether this one is free. Two concurrent scans can both read
		// the same count and both come out free; the transaction does
		// not serialize the quota check.
		var issuedCount int64
		tx.Model(&model.MaterialStockItem{}).
			Where("LOWER(name) = LOWER(?) AND status = ? AND issued_to_client_id = ? AND event_session_id = ?",
				item.Name, model.ItemIssued, clientID, sessionID).
			Count(&issuedCount)

		if OverFreeLimit(int(issuedCount), limit) {
			billed = true
			price = UnitPrice(item.Name)
		}
	}

	if err := tx.Model(&item).Updates(map[string]interface{}{
		"status":              model.ItemIssued,
		"issued_to_client_id": clientID,
	}).Error; err != nil {
		tx.Rollback()
		return event, err
	}

	history := model.MaterialHistory{
		StockItemID: item.ID,
		FromStatus:  model.ItemAvailable,
		ToStatus:    model.ItemIssued,
		ClientID:    &clientID,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		return event, err
	}

	record, err := locateOrCreateIssueRecord(tx, clientID, sessionID)
	if err != nil {
		tx.Rollback()
		return event, err
	}

	suffix := AssetSuffix(item.UniqueID)
	switch strings.ToLower(item.Name) {
	case "table":
		if billed {
			record.PaidTables++
		} else {
			record.FreeTables++
		}
		record.TableNumbers = AppendNumber(record.TableNumbers, suffix)
	case "chair":
		if billed {
			record.PaidChairs++
		} else {
			record.FreeChairs++
		}
		record.ChairNumbers = AppendNumber(record.ChairNumbers, suffix)
	case "plywood":
		record.PlywoodCount++
		record.PlywoodNumbers = AppendNumber(record.PlywoodNumbers, suffix)
	}

	if billed {
		record.TotalPayable += price
		record.BalanceDue += price
		if booking != nil {
			if err := AdjustBookingDue(tx, booking.ID, price); err != nil {
				tx.Rollback()
				return event, err
			}
		}
	}

	if err := tx.Save(record).Error; err != nil {
		tx.Rollback()
		return event, err
	}

	if err := tx.Commit().Error; err != nil {
		return event, err
	}

	event = model.ScanEvent{
		UniqueID:  item.UniqueID,
		ItemName:  item.Name,
		Status:    model.ItemIssued,
		ClientID:  &clientID,
		Billed:    billed,
		SessionID: sessionID,
	}
	return event, nil
}

// ReturnItem transitions an ISSUED item back to AVAILABLE (or DAMAGED) and
// strips its asset number from the issue record that holds it. Charges
// already billed for an overage are left untouched.
func ReturnItem(db *gorm.DB, uniqueID, status string, sessionID uint) (model.ScanEvent, error) {
	var event model.ScanEvent
	target := NormalizeReturnStatus(status)

	tx := db.Begin()
	if tx.Error != nil {
		return event, tx.Error
	}

	var item model.MaterialStockItem
	if err := tx.Where("unique_id = ?", uniqueID).First(&item).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event, ErrItemNotFound
		}
		return event, err
	}
	if item.Status != model.ItemIssued {
		tx.Rollback()
		return event, ErrItemNotIssued
	}

	clientID := item.IssuedToClientID

	if err := tx.Model(&item).Updates(map[string]interface{}{
		"status":              target,
		"issued_to_client_id": nil,
	}).Error; err != nil {
		tx.Rollback()
		return event, err
	}

	history := model.MaterialHistory{
		StockItemID: item.ID,
		FromStatus:  model.ItemIssued,
		ToStatus:    target,
		ClientID:    clientID,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		return event, err
	}

	if IsBillableKind(item.Name) && clientID != nil {
		if err := stripFromIssueRecord(tx, *clientID, sessionID, item.Name, AssetSuffix(item.UniqueID)); err != nil {
			tx.Rollback()
			return event, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return event, err
	}

	event = model.ScanEvent{
		UniqueID:  item.UniqueID,
		ItemName:  item.Name,
		Status:    target,
		ClientID:  clientID,
		SessionID: sessionID,
	}
	return event, nil
}

func locateOrCreateIssueRecord(tx *gorm.DB, clientID, sessionID uint) (*model.MaterialIssueRecord, error) {
	today := time.Now()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	var record model.MaterialIssueRecord
	err := tx.Where("client_id = ? AND issue_date = ? AND event_session_id = ?", clientID, day, sessionID).
		First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record = model.MaterialIssueRecord{
		ClientID:       clientID,
		IssueDate:      day,
		EventSessionID: sessionID,
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func stripFromIssueRecord(tx *gorm.DB, clientID, sessionID uint, itemName, suffix string) error {
	column := "table_numbers"
	if strings.ToLower(itemName) == "chair" {
		column = "chair_numbers"
	}

	var records []model.MaterialIssueRecord
	if err := tx.Where("client_id = ? AND event_session_id = ? AND "+column+" LIKE ?",
		clientID, sessionID, "%"+suffix+"%").
		Order("issue_date DESC").
		Find(&records).Error; err != nil {
		return err
	}

	for i := range records {
		record := &records[i]
		if strings.ToLower(itemName) == "chair" {
			if !ContainsNumber(record.ChairNumbers, suffix) {
				continue
			}
			record.ChairNumbers = StripNumber(record.ChairNumbers, suffix)
		} else {
			if !ContainsNumber(record.TableNumbers, suffix) {
				continue
			}
			record.TableNumbers = StripNumber(record.TableNumbers, suffix)
		}
		return tx.Save(record).Error
	}
	return nil
}
