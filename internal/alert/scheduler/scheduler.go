package scheduler

import (
	"context"
	"log"
	"time"

	"cosmic-watch-backend/internal/alert/usecase"
)

// RiskAnalysisScheduler runs the alert pipeline on a fixed interval.
type RiskAnalysisScheduler struct {
	alertUsecase usecase.AlertUsecase
	interval     time.Duration
	stopChan     chan struct{}
}

func NewRiskAnalysisScheduler(alertUsecase usecase.AlertUsecase, interval time.Duration) *RiskAnalysisScheduler {
	return &RiskAnalysisScheduler{
		alertUsecase: alertUsecase,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop. The first run happens one full interval
// after startup, not immediately.
func (s *RiskAnalysisScheduler) Start() {
	log.Printf("[Scheduler] risk analysis every %s", s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runAnalysis()
			case <-s.stopChan:
				log.Println("[Scheduler] stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *RiskAnalysisScheduler) Stop() {
	close(s.stopChan)
}

func (s *RiskAnalysisScheduler) runAnalysis() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.alertUsecase.RunRiskAnalysis(ctx); err != nil {
		log.Printf("[Scheduler] risk analysis failed: %v", err)
	}
}
