package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID string) (*domain.User, error)
	SaveUser(user *domain.User) error
	ListUsers(limit, offset int) ([]domain.User, error)
	DeleteUser(user *domain.User) error
	CountUsers() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, apperr.Conflict("email already registered")
		}
		log.Printf("create user error: %v", err)
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		log.Printf("find user by email error: %v", err)
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByID(userID string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "id = ?", userID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		log.Printf("find user by id error: %v", err)
		return nil, err
	}
	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}

func (r *userRepository) ListUsers(limit, offset int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the user and, via Select(clause.Associations)-style
// cascading configured on the model, their owned rows.
func (r *userRepository) DeleteUser(user *domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&domain.Order{}, &domain.Project{}, &domain.Synopsis{},
			&domain.Meeting{}, &domain.AdminRequest{},
		} {
			if err := tx.Where("user_id = ?", user.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(user).Error
	})
}

func (r *userRepository) CountUsers() (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Count(&n).Error
	return n, err
}
