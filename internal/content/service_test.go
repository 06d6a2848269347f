package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
)

func newContentFixture(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc, gdb
}

func helpInput(suffix string) HelpInput {
	return HelpInput{
		PrivacyPolicy:     "privacy " + suffix,
		TermsOfService:    "tos " + suffix,
		FAQs:              "faqs " + suffix,
		OrdersAndDelivery: "orders " + suffix,
		ReturnsAndRefunds: "returns " + suffix,
		PaymentMethods:    "payments " + suffix,
	}
}

func TestHelpLatestRevisionWins(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	_, err := svc.GetHelp(ctx)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = svc.PublishHelp(ctx, helpInput("v1"))
	require.NoError(t, err)
	_, err = svc.PublishHelp(ctx, helpInput("v2"))
	require.NoError(t, err)

	current, err := svc.GetHelp(ctx)
	require.NoError(t, err)
	require.Equal(t, "privacy v2", current.PrivacyPolicy)
}

func TestHomePageLatestRevisionWins(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	quote := "stay tuned"
	_, err := svc.PublishHomePage(ctx, HomePageInput{Quote: &quote})
	require.NoError(t, err)

	newer := "new drop friday"
	_, err = svc.PublishHomePage(ctx, HomePageInput{Quote: &newer})
	require.NoError(t, err)

	page, err := svc.GetHomePage(ctx)
	require.NoError(t, err)
	require.Equal(t, "new drop friday", *page.Quote)
}

func TestSubmitContactFormNormalizesEmail(t *testing.T) {
	svc, gdb := newContentFixture(t)
	ctx := context.Background()

	form, err := svc.SubmitContactForm(ctx, ContactInput{
		Email:   " Fan@Example.COM ",
		Message: "love the mixes",
	})
	require.NoError(t, err)
	require.Equal(t, "fan@example.com", form.Email)

	var count int64
	require.NoError(t, gdb.Model(&models.ContactForm{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSubmitContactFormRejectsBadInput(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitContactForm(ctx, ContactInput{Email: "not-an-email", Message: "hi"})
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.SubmitContactForm(ctx, ContactInput{Email: "ok@example.com", Message: "  "})
	require.Error(t, err)
}

func TestSubscribeDeduplicatesEmail(t *testing.T) {
	svc, gdb := newContentFixture(t)
	ctx := context.Background()

	first, err := svc.Subscribe(ctx, SubscribeInput{Email: "fan@example.com"})
	require.NoError(t, err)

	second, err := svc.Subscribe(ctx, SubscribeInput{Email: "FAN@example.com"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, gdb.Model(&models.Newsletter{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSubscribeKeepsCustomerLink(t *testing.T) {
	svc, gdb := newContentFixture(t)
	ctx := context.Background()

	customer := &models.Customer{}
	require.NoError(t, gdb.Create(customer).Error)

	sub, err := svc.Subscribe(ctx, SubscribeInput{Email: "fan@example.com", CustomerID: &customer.ID})
	require.NoError(t, err)
	require.NotNil(t, sub.CustomerID)
	require.Equal(t, customer.ID, *sub.CustomerID)
}

func TestProfilesRoundTrip(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	name := "Nia"
	profile, err := svc.CreateProfile(ctx, ProfileInput{Name: &name, Image: "about-us/nia.jpg"})
	require.NoError(t, err)

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	require.NoError(t, svc.DeleteProfile(ctx, profile.ID))
	profiles, err = svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Empty(t, profiles)
}
