package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/config"
	"github.com/lukustore/lukustore-backend/pkg/db"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/security"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CustomerProvisioner creates the commerce profile that accompanies every
// new user identity. Implemented by internal/customers.
type CustomerProvisioner interface {
	OnUserCreated(ctx context.Context, tx *gorm.DB, user *models.User) (*models.Customer, error)
}

// RegisterRequest contains the payload required for creating an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterService handles the account creation transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
}

type registerService struct {
	tx          txRunner
	provisioner CustomerProvisioner
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(tx txRunner, provisioner CustomerProvisioner, passwordCfg config.PasswordConfig) (RegisterService, error) {
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if provisioner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "customer provisioner required")
	}
	return &registerService{
		tx:          tx,
		provisioner: provisioner,
		passwordCfg: passwordCfg,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "hash password")
	}

	var dto *UserDTO
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByUsername(ctx, username); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check username")
		}

		user, err := repo.Create(ctx, &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			IsActive:     true,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "username") {
				return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		if _, err := s.provisioner.OnUserCreated(ctx, tx, user); err != nil {
			return err
		}

		dto = FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
