package service

import (
	"context"

	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	Log(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error
	LogEntity(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, value interface{}) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Log writes an audit entry inside the caller's transaction so the trail
// commits or rolls back with the change it describes. Passing the plain db
// handle is fine for reads and standalone events.
func (s *auditService) Log(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	db := tx
	if db == nil {
		db = s.db
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}

// LogEntity is the common case: an action against one named entity.
func (s *auditService) LogEntity(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, value interface{}) error {
	return s.Log(ctx, tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"value":     value,
	})
}
