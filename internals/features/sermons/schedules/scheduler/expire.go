package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"masjida_backend/internals/features/sermons/schedules/service"
)

// StartScheduleDoneScheduler menjalankan sweep auto-expire tiap interval
// (default: 1 jam, override lewat SCHEDULE_DONE_SWEEP_MINUTES).
func StartScheduleDoneScheduler(db *gorm.DB) {
	go func() {
		intervalMin := 60
		if val := os.Getenv("SCHEDULE_DONE_SWEEP_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		ticker := time.NewTicker(time.Duration(intervalMin) * time.Minute)
		defer ticker.Stop()

		for {
			n, err := service.ExpireFinishedSchedules(db, time.Now())
			if err != nil {
				log.Printf("[SWEEP ERROR] Gagal menandai jadwal selesai: %v", err)
			} else if n > 0 {
				log.Printf("[SWEEP] %d jadwal ditandai done", n)
			}
			<-ticker.C
		}
	}()
}
