package shop

import (
	"context"
	"fmt"
	"time"

	"economy-manager/feature/shop/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func enqueue(tx *gorm.DB, player, command, source string) error {
	cmd := models.PendingCommand{PlayerUUID: player, Command: command, Source: source}
	if err := tx.Create(&cmd).Error; err != nil {
		return fmt.Errorf("failed to enqueue command: %w", err)
	}
	return nil
}

// PendingCommands returns commands not yet dispatched, oldest first.
func (s *Service) PendingCommands(ctx context.Context, limit int) ([]models.PendingCommand, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var cmds []models.PendingCommand
	err := s.db.WithContext(ctx).
		Where("dispatched_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&cmds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pending commands: %w", err)
	}
	return cmds, nil
}

// AckCommand marks a command as dispatched by the host.
func (s *Service) AckCommand(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.PendingCommand{}).
		Where("id = ? AND dispatched_at IS NULL", id).
		Update("dispatched_at", time.Now())
	if res.Error != nil {
		return fmt.Errorf("failed to acknowledge command %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCommandNotFound
	}
	s.logger.Debug("Command dispatched", zap.Uint("command", id))
	return nil
}
