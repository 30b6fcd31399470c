package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) (*domain.Order, error)
	FindOrderByID(orderID string) (*domain.Order, error)
	FindOrderForUser(orderID, userID string) (*domain.Order, error)
	ListOrdersByUser(userID string) ([]domain.Order, error)
	ListOrders(limit, offset int) ([]domain.Order, error)
	SaveOrderVersioned(order *domain.Order) error
	HasCompletedOrder(userID string) (bool, error)
	LatestOrderByUser(userID string) (*domain.Order, error)
	CountOrdersByStatus(status domain.OrderStatus) (int64, error)
	SumRevenue() (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("nil order")
	}
	if err := r.db.Create(order).Error; err != nil {
		log.Printf("create order error: %v", err)
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) FindOrderByID(orderID string) (*domain.Order, error) {
	order := &domain.Order{}
	if err := r.db.First(order, "id = ?", orderID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

// FindOrderForUser scopes the lookup to the owner. A wrong-owner lookup gets
// the same not-found as a bad id so order ids are not probeable.
func (r *orderRepository) FindOrderForUser(orderID, userID string) (*domain.Order, error) {
	order := &domain.Order{}
	err := r.db.First(order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListOrdersByUser(userID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListOrders(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrderVersioned writes the full row guarded by the version the caller
// read. RowsAffected == 0 means another writer got there first.
func (r *orderRepository) SaveOrderVersioned(order *domain.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	readVersion := order.Version
	order.Version = readVersion + 1

	res := r.db.Model(&domain.Order{}).
		Where("id = ? AND version = ?", order.ID, readVersion).
		Select("*").Omit("id", "created_at").
		Updates(order)
	if res.Error != nil {
		order.Version = readVersion
		log.Printf("save order error: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		order.Version = readVersion
		return apperr.Conflict("order was modified by someone else, reload and retry")
	}
	return nil
}

func (r *orderRepository) HasCompletedOrder(userID string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).
		Where("user_id = ? AND status = ?", userID, domain.OrderCompleted).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *orderRepository) LatestOrderByUser(userID string) (*domain.Order, error) {
	order := &domain.Order{}
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(order).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) CountOrdersByStatus(status domain.OrderStatus) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// SumRevenue totals the amounts of paid and completed orders.
func (r *orderRepository) SumRevenue() (int64, error) {
	var total *int64
	err := r.db.Model(&domain.Order{}).
		Where("status IN ?", []domain.OrderStatus{domain.OrderPaid, domain.OrderCompleted}).
		Select("SUM(amount)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
