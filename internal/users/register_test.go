package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukustore/lukustore-backend/internal/customers"
	"github.com/lukustore/lukustore-backend/pkg/config"
	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/security"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func newRegisterFixture(t *testing.T) (RegisterService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	svc, err := NewRegisterService(gormTxRunner{db: gdb}, customers.NewProvisioner(), testPasswordConfig())
	require.NoError(t, err)
	return svc, gdb
}

func TestRegisterCreatesUserAndCustomer(t *testing.T) {
	svc, gdb := newRegisterFixture(t)
	ctx := context.Background()

	dto, err := svc.Register(ctx, RegisterRequest{
		Username: "amina",
		Email:    "Amina@Example.com",
		Password: "very-secure-password",
	})
	require.NoError(t, err)
	require.Equal(t, "amina", dto.Username)
	require.Equal(t, "amina@example.com", dto.Email)
	require.True(t, dto.IsActive)

	var user models.User
	require.NoError(t, gdb.First(&user, "username = ?", "amina").Error)
	require.NotEqual(t, "very-secure-password", user.PasswordHash)

	ok, err := security.VerifyPassword("very-secure-password", user.PasswordHash)
	require.NoError(t, err)
	require.True(t, ok)

	var customer models.Customer
	require.NoError(t, gdb.First(&customer, "user_id = ?", user.ID).Error)
	require.Equal(t, "amina", *customer.Name)
	require.Equal(t, "amina@example.com", *customer.Email)
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "kofi", Email: "a@b.com", Password: "longenough1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Username: "kofi", Email: "c@d.com", Password: "longenough2"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestRegisterFailureRollsBackUser(t *testing.T) {
	svc, gdb := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "  ", Email: "a@b.com", Password: "longenough1"})
	require.Error(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Username: "nia", Email: "nia@b.com", Password: ""})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
