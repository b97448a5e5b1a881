package metrics

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
)

// BusinessMetricsCollector refreshes business gauges on a cron schedule
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	cron    *cron.Cron
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		cron:    cron.New(),
	}
}

// Start begins collecting metrics every minute
func (c *BusinessMetricsCollector) Start() error {
	if _, err := c.cron.AddFunc("@every 1m", c.collect); err != nil {
		return err
	}
	c.cron.Start()

	// prime the gauges right away
	go c.collect()
	return nil
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var projectCount int64
	if err := c.db.WithContext(ctx).Model(&domain.Project{}).Count(&projectCount).Error; err != nil {
		c.logger.Error("Failed to count projects", zap.Error(err))
	} else {
		c.metrics.SetProjectsTotal(projectCount)
	}

	var openRejections int64
	if err := c.db.WithContext(ctx).Model(&domain.Rejection{}).
		Where("status <> ?", domain.RejectionStatusResolved).
		Count(&openRejections).Error; err != nil {
		c.logger.Error("Failed to count open rejections", zap.Error(err))
	} else {
		c.metrics.SetOpenRejectionsTotal(openRejections)
	}
}
