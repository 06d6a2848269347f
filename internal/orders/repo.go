package orders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

// Repository exposes order, line item and shipping address persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx rebinds the repo to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindOpenOrder returns the customer's incomplete order, if any.
func (r *Repository) FindOpenOrder(ctx context.Context, customerID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND (complete = ? OR complete IS NULL)", customerID, false).
		Order("id").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrCreateOpenOrder returns the customer's cart, creating one when none
// is open.
func (r *Repository) GetOrCreateOpenOrder(ctx context.Context, customerID uint) (*models.Order, error) {
	order, err := r.FindOpenOrder(ctx, customerID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	complete := false
	created := &models.Order{CustomerID: &customerID, Complete: &complete}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// FindByID loads an order by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindItems loads the order's lines with their products attached so the
// derived values can be computed.
func (r *Repository) FindItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindItem loads a single line for the order/product pair.
func (r *Repository) FindItem(ctx context.Context, orderID, productID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SaveItem persists a line item.
func (r *Repository) SaveItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItem removes a line item.
func (r *Repository) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.OrderItem{}, "id = ?", id).Error
}

// MarkComplete flags the order as placed and records its transaction id.
func (r *Repository) MarkComplete(ctx context.Context, orderID uint, transactionID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"complete":       true,
			"transaction_id": transactionID,
		}).Error
}

// CreateShippingAddress stores where the order ships.
func (r *Repository) CreateShippingAddress(ctx context.Context, addr *models.ShippingAddress) (*models.ShippingAddress, error) {
	if err := r.db.WithContext(ctx).Create(addr).Error; err != nil {
		return nil, err
	}
	return addr, nil
}

// ListCompletedForCustomer returns the customer's placed orders, newest first.
func (r *Repository) ListCompletedForCustomer(ctx context.Context, customerID uint, page pagination.Params) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND complete = ?", customerID, true).
		Order("date_ordered DESC, id DESC").
		Limit(page.PageSize()).
		Offset(page.Offset()).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
