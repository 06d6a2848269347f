package content

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
)

// ProfileInput carries a team member profile.
type ProfileInput struct {
	Summary   *string `json:"summary,omitempty" validate:"omitempty,max=700"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Role      *string `json:"role,omitempty" validate:"omitempty,max=100"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,max=50"`
	Twitter   *string `json:"twitter,omitempty" validate:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty"`
	Image     string  `json:"image" validate:"required"`
}

// HelpInput carries a full set of policy texts.
type HelpInput struct {
	PrivacyPolicy     string `json:"privacy_policy" validate:"required"`
	TermsOfService    string `json:"terms_of_service" validate:"required"`
	FAQs              string `json:"faqs" validate:"required"`
	OrdersAndDelivery string `json:"orders_and_delivery" validate:"required"`
	ReturnsAndRefunds string `json:"returns_and_refunds" validate:"required"`
	PaymentMethods    string `json:"payment_methods" validate:"required"`
}

// HomePageInput carries the hero block fields.
type HomePageInput struct {
	Quote       *string `json:"quote,omitempty"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	QuoteAuthor *string `json:"quote_author,omitempty" validate:"omitempty,max=200"`
	Image       *string `json:"image,omitempty"`
	Button      *string `json:"button,omitempty" validate:"omitempty,max=10"`
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Message string  `json:"message" validate:"required"`
}

// SubscribeInput carries a newsletter signup.
type SubscribeInput struct {
	Email      string `json:"email" validate:"required,email"`
	CustomerID *uint  `json:"customer_id,omitempty"`
}

// Service exposes the static content operations used by the API layer.
type Service interface {
	CreateProfile(ctx context.Context, input ProfileInput) (*models.AboutUs, error)
	ListProfiles(ctx context.Context) ([]models.AboutUs, error)
	DeleteProfile(ctx context.Context, id uint) error

	GetHelp(ctx context.Context) (*models.Help, error)
	PublishHelp(ctx context.Context, input HelpInput) (*models.Help, error)

	GetHomePage(ctx context.Context) (*models.HomePage, error)
	PublishHomePage(ctx context.Context, input HomePageInput) (*models.HomePage, error)

	SubmitContactForm(ctx context.Context, input ContactInput) (*models.ContactForm, error)
	Subscribe(ctx context.Context, input SubscribeInput) (*models.Newsletter, error)
}

type service struct {
	repo *Repository
}

// NewService builds a content service over the provided repo.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "content repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateProfile(ctx context.Context, input ProfileInput) (*models.AboutUs, error) {
	if input.Image == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image is required")
	}
	profile, err := s.repo.CreateProfile(ctx, &models.AboutUs{
		Summary:   input.Summary,
		Name:      input.Name,
		Role:      input.Role,
		Instagram: input.Instagram,
		Twitter:   input.Twitter,
		Bio:       input.Bio,
		Image:     input.Image,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
	}
	return profile, nil
}

func (s *service) ListProfiles(ctx context.Context) ([]models.AboutUs, error) {
	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list profiles")
	}
	return profiles, nil
}

func (s *service) DeleteProfile(ctx context.Context, id uint) error {
	if err := s.repo.DeleteProfile(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete profile")
	}
	return nil
}

func (s *service) GetHelp(ctx context.Context) (*models.Help, error) {
	help, err := s.repo.LatestHelp(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "help content not published yet")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load help content")
	}
	return help, nil
}

// PublishHelp appends a revision; readers always see the latest one.
func (s *service) PublishHelp(ctx context.Context, input HelpInput) (*models.Help, error) {
	help, err := s.repo.CreateHelp(ctx, &models.Help{
		PrivacyPolicy:     input.PrivacyPolicy,
		TermsOfService:    input.TermsOfService,
		FAQs:              input.FAQs,
		OrdersAndDelivery: input.OrdersAndDelivery,
		ReturnsAndRefunds: input.ReturnsAndRefunds,
		PaymentMethods:    input.PaymentMethods,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "publish help content")
	}
	return help, nil
}

func (s *service) GetHomePage(ctx context.Context) (*models.HomePage, error) {
	page, err := s.repo.LatestHomePage(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "home page not published yet")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load home page")
	}
	return page, nil
}

func (s *service) PublishHomePage(ctx context.Context, input HomePageInput) (*models.HomePage, error) {
	page, err := s.repo.CreateHomePage(ctx, &models.HomePage{
		Quote:       input.Quote,
		Name:        input.Name,
		QuoteAuthor: input.QuoteAuthor,
		Image:       input.Image,
		Button:      input.Button,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "publish home page")
	}
	return page, nil
}

func (s *service) SubmitContactForm(ctx context.Context, input ContactInput) (*models.ContactForm, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}

	form, err := s.repo.CreateContactForm(ctx, &models.ContactForm{
		Name:    input.Name,
		Email:   email,
		Message: input.Message,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store contact form")
	}
	return form, nil
}

// Subscribe stores a newsletter signup. Subscribing an already-registered
// email returns the existing row instead of duplicating it.
func (s *service) Subscribe(ctx context.Context, input SubscribeInput) (*models.Newsletter, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindSubscription(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check subscription")
	}

	sub, err := s.repo.CreateSubscription(ctx, &models.Newsletter{
		CustomerID: input.CustomerID,
		Email:      email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store subscription")
	}
	return sub, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid email address")
	}
	return email, nil
}
