package customers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func TestOnUserCreatedProvisionsExactlyOneCustomer(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()

	user := &models.User{Username: "amina", Email: "amina@example.com", PasswordHash: "x"}
	require.NoError(t, gdb.Create(user).Error)

	prov := NewProvisioner()
	customer, err := prov.OnUserCreated(ctx, gdb, user)
	require.NoError(t, err)
	require.NotNil(t, customer.UserID)
	require.Equal(t, user.ID, *customer.UserID)
	require.Equal(t, "amina", *customer.Name)
	require.Equal(t, "amina@example.com", *customer.Email)

	// repeated hook delivery must not create a second profile
	again, err := prov.OnUserCreated(ctx, gdb, user)
	require.NoError(t, err)
	require.Equal(t, customer.ID, again.ID)

	var count int64
	require.NoError(t, gdb.Model(&models.Customer{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestOnUserCreatedRejectsUnpersistedUser(t *testing.T) {
	gdb := openTestDB(t)

	_, err := NewProvisioner().OnUserCreated(context.Background(), gdb, &models.User{Username: "ghost"})
	require.Error(t, err)
}

func TestUpdateProfileLeavesUserLinkAlone(t *testing.T) {
	gdb := openTestDB(t)
	ctx := context.Background()

	user := &models.User{Username: "kofi", Email: "kofi@example.com", PasswordHash: "x"}
	require.NoError(t, gdb.Create(user).Error)

	customer, err := NewProvisioner().OnUserCreated(ctx, gdb, user)
	require.NoError(t, err)

	repo := NewRepository(gdb)
	name := "Kofi A."
	require.NoError(t, repo.UpdateProfile(ctx, customer.ID, &name, nil, nil))

	reloaded, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, "Kofi A.", *reloaded.Name)
	require.Nil(t, reloaded.Email)
	require.NotNil(t, reloaded.UserID)
	require.Equal(t, user.ID, *reloaded.UserID)
}
