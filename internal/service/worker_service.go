package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type WorkerService struct {
	medicineRepo *repository.MedicineRepository
	auditRepo    *repository.AuditRepository
	interval     time.Duration

	// tracks medicines already flagged so each low-stock episode is
	// recorded once, not on every sweep
	flagged map[uint]bool
}

func NewWorkerService(medicineRepo *repository.MedicineRepository, auditRepo *repository.AuditRepository, interval time.Duration) *WorkerService {
	return &WorkerService{
		medicineRepo: medicineRepo,
		auditRepo:    auditRepo,
		interval:     interval,
		flagged:      make(map[uint]bool),
	}
}

// Start begins the background worker that sweeps pharmacy stock levels
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Background worker started - low stock sweep every %v", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.sweepLowStock()
		}
	}
}

// sweepLowStock records an audit entry for each medicine that has newly
// dropped to or below its reorder level, and clears the flag once it
// recovers
func (w *WorkerService) sweepLowStock() {
	medicines, err := w.medicineRepo.GetLowStockMedicines()
	if err != nil {
		log.Printf("Error fetching low stock medicines: %v", err)
		return
	}

	low := make(map[uint]bool, len(medicines))
	for _, medicine := range medicines {
		low[medicine.ID] = true
		if w.flagged[medicine.ID] {
			continue
		}
		w.flagged[medicine.ID] = true
		if err := w.auditRepo.CreateAuditLog(nil, models.AuditMedicineLowStock,
			fmt.Sprintf("%s stock at %d (reorder level %d)", medicine.Name, medicine.StockQuantity, medicine.ReorderLevel)); err != nil {
			log.Printf("Error recording low stock for %s: %v", medicine.Name, err)
			continue
		}
		log.Printf("Low stock: %s at %d (reorder level %d)", medicine.Name, medicine.StockQuantity, medicine.ReorderLevel)
	}

	for id := range w.flagged {
		if !low[id] {
			delete(w.flagged, id)
		}
	}
}
