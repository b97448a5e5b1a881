package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"app-submission-api/internal/client"
	"app-submission-api/internal/repository"
)

// CleanupJob removes checklist file rows whose parent item no longer exists,
// together with their blobs. Deleting an item removes its blobs best-effort;
// this job sweeps up whatever that left behind.
type CleanupJob struct {
	checklistRepo repository.ChecklistRepository
	s3Client      client.S3ClientInterface
	logger        *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(checklistRepo repository.ChecklistRepository, s3Client client.S3ClientInterface, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		checklistRepo: checklistRepo,
		s3Client:      s3Client,
		logger:        logger,
	}
}

// Run executes one sweep
func (j *CleanupJob) Run() {
	ctx := context.Background()

	orphans, err := j.checklistRepo.FindOrphanFiles(ctx)
	if err != nil {
		j.logger.Error("Failed to find orphaned checklist files", zap.Error(err))
		return
	}
	if len(orphans) == 0 {
		return
	}

	j.logger.Info("Found orphaned checklist files", zap.Int("count", len(orphans)))

	var removed []uuid.UUID
	failCount := 0
	for _, file := range orphans {
		if j.s3Client != nil {
			if err := j.s3Client.DeleteFile(ctx, file.FileKey); err != nil {
				j.logger.Error("Failed to delete orphaned blob",
					zap.String("file_id", file.ID.String()),
					zap.String("file_key", file.FileKey),
					zap.Error(err),
				)
				failCount++
				continue
			}
		}
		removed = append(removed, file.ID)
	}

	for _, fileID := range removed {
		if err := j.checklistRepo.DeleteFile(ctx, fileID); err != nil {
			j.logger.Error("Failed to delete orphaned file row",
				zap.String("file_id", fileID.String()),
				zap.Error(err),
			)
		}
	}

	j.logger.Info("Checklist file cleanup completed",
		zap.Int("total_orphaned", len(orphans)),
		zap.Int("removed", len(removed)),
		zap.Int("failed", failCount),
	)
}
