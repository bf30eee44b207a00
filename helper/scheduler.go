package helper

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/achalesh/exhibition-manager-sub001/database"
	"github.com/achalesh/exhibition-manager-sub001/model"
	"github.com/achalesh/exhibition-manager-sub001/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	reconcileScheduler gocron.Scheduler
	sweepScheduler     *cron.Cron
)

// ReconcileDueBalances recomputes every active booking's due from raw
// aggregates and records rows where the stored balance diverges. Stored
// balances are never patched here.
func ReconcileDueBalances() {
	db := database.DB

	var sessions []model.EventSession
	if err := db.Find(&sessions).Error; err != nil {
		log.Printf("reconciliation: failed to load sessions: %v", err)
		return
	}

	for _, session := range sessions {
		found, err := utils.RecordDueMismatches(db, session.ID)
		if err != nil {
			log.Printf("reconciliation failed for session %d: %v", session.ID, err)
			continue
		}
		if found > 0 {
			log.Printf("reconciliation: %d due mismatches in session %q", found, session.Name)
		}
	}
}

func StartReconciliationScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	reconcileScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(1, 30, 0),
			),
		),
		gocron.NewTask(ReconcileDueBalances),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Due reconciliation scheduler started (01:30 daily)")
}

func StopReconciliationScheduler() {
	if reconcileScheduler != nil {
		_ = reconcileScheduler.Shutdown()
	}
}

// SweepOrphanQRCodes removes QR PNGs with no matching stock item row. QR
// files are written outside the item insert transaction, so a crash in
// between can leave a file behind.
func SweepOrphanQRCodes() {
	db := database.DB

	entries, err := os.ReadDir(utils.QRDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("QR sweep: %v", err)
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		uniqueID := strings.ToUpper(strings.TrimSuffix(entry.Name(), ".png"))

		var count int64
		if err := db.Model(&model.MaterialStockItem{}).
			Where("unique_id = ?", uniqueID).
			Count(&count).Error; err != nil {
			log.Printf("QR sweep lookup failed for %s: %v", uniqueID, err)
			continue
		}
		if count == 0 {
			if err := os.Remove(filepath.Join(utils.QRDir, entry.Name())); err != nil {
				log.Printf("QR sweep remove failed for %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		log.Printf("QR sweep removed %d orphaned files", removed)
	}
}

func StartQRSweepScheduler() {
	sweepScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sweepScheduler.AddFunc("0 */6 * * *", SweepOrphanQRCodes)
	if err != nil {
		log.Printf("failed to start QR sweep scheduler: %v", err)
		return
	}

	sweepScheduler.Start()
	log.Println("Orphan QR sweep scheduler started (every 6 hours)")
}

func StopQRSweepScheduler() {
	if sweepScheduler != nil {
		sweepScheduler.Stop()
	}
}
