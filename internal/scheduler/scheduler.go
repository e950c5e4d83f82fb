// Package scheduler keeps the response cache warm so user requests rarely
// pay the full fan-out latency.
package scheduler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SpdVpr/ainews/internal/aggregator"
	"github.com/SpdVpr/ainews/internal/api"
	"github.com/SpdVpr/ainews/internal/cache"
)

type Scheduler struct {
	cron     *cron.Cron
	agg      *aggregator.Aggregator
	cache    cache.Cache
	cacheTTL time.Duration
}

func New(spec string, agg *aggregator.Aggregator, c cache.Cache, cacheTTL time.Duration) (*Scheduler, error) {
	cr := cron.New()

	s := &Scheduler{
		cron:     cr,
		agg:      agg,
		cache:    c,
		cacheTTL: cacheTTL,
	}

	if _, err := cr.AddFunc(spec, s.refresh); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// Delay the first refresh so startup isn't competing with the first
	// incoming requests.
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.refresh()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce exposes a single refresh for manual triggering.
func (s *Scheduler) RunOnce() {
	s.refresh()
}

func (s *Scheduler) refresh() {
	log.Println("scheduler: refreshing news cache...")

	ctx := context.Background()
	items := s.agg.Latest(ctx)

	payload, err := json.Marshal(items)
	if err != nil {
		log.Printf("scheduler: marshal items: %v", err)
		return
	}
	s.cache.Set(ctx, api.NewsCacheKey, payload, s.cacheTTL)

	log.Printf("scheduler: cache refreshed with %d items", len(items))
}
