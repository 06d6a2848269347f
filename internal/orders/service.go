package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	"github.com/lukustore/lukustore-backend/pkg/enums"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CartView is the cart with its derived values attached.
type CartView struct {
	Order     *models.Order      `json:"order"`
	Items     []models.OrderItem `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"item_count"`
	Shipping  bool               `json:"shipping"`
}

// ShippingInput carries the address submitted at checkout.
type ShippingInput struct {
	Address string              `json:"address" validate:"required,max=200"`
	City    string              `json:"city" validate:"required,max=200"`
	State   string              `json:"state" validate:"required,max=200"`
	Zipcode string              `json:"zipcode" validate:"required,max=200"`
	Label   *enums.AddressLabel `json:"label,omitempty"`
}

// CheckoutInput is the checkout payload. Total is the amount the client
// displayed; checkout refuses to complete when it no longer matches the
// recomputed cart total.
type CheckoutInput struct {
	Total    decimal.Decimal `json:"total"`
	Shipping *ShippingInput  `json:"shipping,omitempty"`
}

// Service exposes cart and order operations used by the API layer.
type Service interface {
	GetCart(ctx context.Context, customerID uint) (*CartView, error)
	AdjustItem(ctx context.Context, customerID, productID uint, delta int) (*CartView, error)
	SetItemQuantity(ctx context.Context, customerID, productID uint, quantity int) (*CartView, error)
	Checkout(ctx context.Context, customerID uint, input CheckoutInput) (*models.Order, error)
	ListCompleted(ctx context.Context, customerID uint, page pagination.Params) ([]models.Order, error)
}

type service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds an orders service with the provided dependencies.
func NewService(repo *Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders repository required")
	}
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) GetCart(ctx context.Context, customerID uint) (*CartView, error) {
	if customerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	order, err := s.repo.GetOrCreateOpenOrder(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return s.buildView(ctx, s.repo, order)
}

func (s *service) buildView(ctx context.Context, repo *Repository, order *models.Order) (*CartView, error) {
	items, err := repo.FindItems(ctx, order.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart items")
	}

	total, err := CartTotal(items)
	if err != nil {
		return nil, err
	}
	shipping, err := RequiresShipping(items)
	if err != nil {
		return nil, err
	}

	return &CartView{
		Order:     order,
		Items:     items,
		Total:     total,
		ItemCount: CartItemCount(items),
		Shipping:  shipping,
	}, nil
}

// AdjustItem steps the product's quantity by delta, creating the line on
// first add and removing it once the quantity drops to zero.
func (s *service) AdjustItem(ctx context.Context, customerID, productID uint, delta int) (*CartView, error) {
	return s.mutateItem(ctx, customerID, productID, func(current int) int {
		return current + delta
	})
}

// SetItemQuantity pins the product's quantity, removing the line at zero.
func (s *service) SetItemQuantity(ctx context.Context, customerID, productID uint, quantity int) (*CartView, error) {
	return s.mutateItem(ctx, customerID, productID, func(int) int {
		return quantity
	})
}

func (s *service) mutateItem(ctx context.Context, customerID, productID uint, next func(current int) int) (*CartView, error) {
	if customerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	if productID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	var view *CartView
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var product models.Product
		if err := tx.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
		}

		order, err := repo.GetOrCreateOpenOrder(ctx, customerID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
		}

		item, err := repo.FindItem(ctx, order.ID, productID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			orderID := order.ID
			pid := productID
			item = &models.OrderItem{OrderID: &orderID, ProductID: &pid, Quantity: 0}
		} else if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart item")
		}

		quantity := next(item.Quantity)
		if quantity <= 0 {
			if item.ID != 0 {
				if err := repo.DeleteItem(ctx, item.ID); err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
				}
			}
		} else {
			item.Quantity = quantity
			if err := repo.SaveItem(ctx, item); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart item")
			}
		}

		view, err = s.buildView(ctx, repo, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Checkout completes the open order: the cart total is recomputed and
// compared against the amount the client saw, the order gets a UUID
// transaction id, and a shipping address is stored when any line is
// physical.
func (s *service) Checkout(ctx context.Context, customerID uint, input CheckoutInput) (*models.Order, error) {
	if customerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	var placed *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindOpenOrder(ctx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "no open order")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
		}

		items, err := repo.FindItems(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart items")
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		total, err := CartTotal(items)
		if err != nil {
			return err
		}
		if !total.Equal(input.Total) {
			return pkgerrors.New(pkgerrors.CodeConflict, "cart total changed, review your order").
				WithDetails(map[string]any{"expected": total.String(), "submitted": input.Total.String()})
		}

		shipping, err := RequiresShipping(items)
		if err != nil {
			return err
		}
		if shipping {
			if input.Shipping == nil {
				return pkgerrors.New(pkgerrors.CodeValidation, "shipping address required for physical items")
			}
			customer := customerID
			orderID := order.ID
			dateAdded := time.Now().UTC().Format(time.RFC3339)
			label := input.Shipping.Label
			if label != nil && !label.IsValid() {
				return pkgerrors.New(pkgerrors.CodeValidation, "unknown address label")
			}
			addr := &models.ShippingAddress{
				CustomerID: &customer,
				OrderID:    &orderID,
				Address:    &input.Shipping.Address,
				City:       &input.Shipping.City,
				State:      &input.Shipping.State,
				Zipcode:    &input.Shipping.Zipcode,
				DateAdded:  &dateAdded,
				Label:      label,
			}
			if _, err := repo.CreateShippingAddress(ctx, addr); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store shipping address")
			}
		}

		transactionID := uuid.NewString()
		if err := repo.MarkComplete(ctx, order.ID, transactionID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "complete order")
		}

		complete := true
		order.Complete = &complete
		order.TransactionID = &transactionID
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (s *service) ListCompleted(ctx context.Context, customerID uint, page pagination.Params) ([]models.Order, error) {
	if customerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	orders, err := s.repo.ListCompletedForCustomer(ctx, customerID, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return orders, nil
}
