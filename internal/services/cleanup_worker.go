package services

import (
	"log"
	"sync"
	"time"

	"resumatch/internal/repository"
)

// CleanupWorker periodically purges expired verification and password-reset
// codes. Expired rows are already unusable (every lookup checks the expiry),
// so the sweep only keeps the tables from growing.
type CleanupWorker struct {
	verificationRepo repository.VerificationRepository
	resetRepo        repository.ResetPasswordRepository

	interval time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

func NewCleanupWorker(
	verificationRepo repository.VerificationRepository,
	resetRepo repository.ResetPasswordRepository,
	interval time.Duration,
) *CleanupWorker {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &CleanupWorker{
		verificationRepo: verificationRepo,
		resetRepo:        resetRepo,
		interval:         interval,
		stopChan:         make(chan struct{}),
	}
}

func (w *CleanupWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run()
}

func (w *CleanupWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()
}

func (w *CleanupWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep()
		case <-w.stopChan:
			return
		}
	}
}

func (w *CleanupWorker) sweep() {
	now := time.Now()

	purged, err := w.verificationRepo.DeleteExpired(now)
	if err != nil {
		log.Printf("Failed to purge expired verifications: %v", err)
	} else if purged > 0 {
		log.Printf("Purged %d expired verification codes", purged)
	}

	purged, err = w.resetRepo.DeleteExpired(now)
	if err != nil {
		log.Printf("Failed to purge expired reset codes: %v", err)
	} else if purged > 0 {
		log.Printf("Purged %d expired password reset codes", purged)
	}
}
