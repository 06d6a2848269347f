package customers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
)

// Provisioner creates the commerce-side Customer profile for new user
// identities. Name and email are copied at creation time and drift freely
// afterwards.
type Provisioner struct{}

// NewProvisioner exposes the default customer provisioning implementation.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// OnUserCreated provisions exactly one customer for the user inside the
// caller's transaction. A second call for the same user is a no-op so the
// registration flow stays idempotent under retries.
func (p *Provisioner) OnUserCreated(ctx context.Context, tx *gorm.DB, user *models.User) (*models.Customer, error) {
	if user == nil || user.ID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user must be persisted before provisioning")
	}

	repo := NewRepository(tx)

	existing, err := repo.FindByUserID(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing customer")
	}

	userID := user.ID
	name := user.Username
	email := user.Email
	customer, err := repo.Create(ctx, &models.Customer{
		UserID: &userID,
		Name:   &name,
		Email:  &email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "provision customer")
	}
	return customer, nil
}
