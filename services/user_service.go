package services

import (
	"errors"

	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Bootstrap creates the user row for an external principal if it does not
// exist yet. Safe to call on every login; conflicts on external_id are
// silently ignored.
func (s *UserService) Bootstrap(externalID, email string) error {
	user := models.User{ExternalID: externalID, Email: email}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(&user).Error
	if err != nil {
		return err
	}
	logger.L().Info("bootstrapped user", zap.String("external_id", externalID))
	return nil
}

// GetByExternalID resolves the gateway principal to the internal user row.
func (s *UserService) GetByExternalID(externalID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("external_id = ?", externalID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
