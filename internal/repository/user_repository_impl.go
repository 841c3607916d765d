package repository

import (
	"errors"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindCustomersByBusiness(db *gorm.DB, businessID uuid.UUID) ([]entity.User, error) {
	var users []entity.User
	err := db.
		Joins("JOIN appointments ON appointments.customer_id = users.id").
		Where("appointments.business_id = ?", businessID).
		Distinct("users.*").
		Order("users.full_name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindDuplicateCandidates returns active customers that share a normalized
// email or phone number with at least one other customer.
func (r *userRepository) FindDuplicateCandidates(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.
		Where("role_id = ? AND is_active = ?", entity.RoleIDCustomer, true).
		Where(`lower(email) IN (
			SELECT lower(email) FROM users
			WHERE role_id = ? AND is_active = ?
			GROUP BY lower(email) HAVING COUNT(*) > 1
		) OR (phone_number <> '' AND phone_number IN (
			SELECT phone_number FROM users
			WHERE role_id = ? AND is_active = ? AND phone_number <> ''
			GROUP BY phone_number HAVING COUNT(*) > 1
		))`, entity.RoleIDCustomer, true, entity.RoleIDCustomer, true).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}
