package services

import (
	"context"
	"log"
	"time"

	"intia-api/internal/adapters/persistence/repositories"
	"intia-api/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// CronService runs the policy expiry sweep on a cron schedule.
// It moves ACTIVE policies whose end date has passed to EXPIRED.
type CronService struct {
	policyRepo repositories.PolicyRepository
	schedule   string
	metrics    *metrics.Metrics
	cron       *cron.Cron
	now        func() time.Time
}

// NewCronService creates a new cron service. An empty schedule disables it.
func NewCronService(policyRepo repositories.PolicyRepository, schedule string, m *metrics.Metrics) *CronService {
	return &CronService{
		policyRepo: policyRepo,
		schedule:   schedule,
		metrics:    m,
		cron:       cron.New(),
		now:        time.Now,
	}
}

// Start registers the sweep and starts the scheduler
func (s *CronService) Start() error {
	if s.schedule == "" {
		log.Println("⏸️ Policy expiry sweep disabled (EXPIRY_CRON empty)")
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.SweepExpired(context.Background()); err != nil {
			log.Printf("❌ Policy expiry sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🚀 CronService started [expiry sweep: %s]", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 CronService stopped")
}

// SweepExpired expires every ACTIVE policy whose end date is before now
func (s *CronService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.policyRepo.ExpireEndedBefore(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	s.metrics.AddPoliciesExpired(n)
	if n > 0 {
		log.Printf("⏰ Policy expiry sweep: %d policies expired", n)
	}
	return n, nil
}
