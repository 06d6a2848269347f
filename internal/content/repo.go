package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukustore/lukustore-backend/pkg/db/models"
)

// Repository exposes persistence for the static site content: team
// profiles, help/home singletons, contact submissions and newsletter
// subscriptions.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a content repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateProfile inserts a team member profile.
func (r *Repository) CreateProfile(ctx context.Context, profile *models.AboutUs) (*models.AboutUs, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// ListProfiles returns every team profile in insertion order.
func (r *Repository) ListProfiles(ctx context.Context) ([]models.AboutUs, error) {
	var profiles []models.AboutUs
	if err := r.db.WithContext(ctx).Order("id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteProfile removes a team profile.
func (r *Repository) DeleteProfile(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.AboutUs{}, "id = ?", id).Error
}

// LatestHelp returns the most recent help row; the application treats the
// table as a singleton where the latest row wins.
func (r *Repository) LatestHelp(ctx context.Context) (*models.Help, error) {
	var help models.Help
	if err := r.db.WithContext(ctx).Order("id DESC").First(&help).Error; err != nil {
		return nil, err
	}
	return &help, nil
}

// CreateHelp appends a new help revision.
func (r *Repository) CreateHelp(ctx context.Context, help *models.Help) (*models.Help, error) {
	if err := r.db.WithContext(ctx).Create(help).Error; err != nil {
		return nil, err
	}
	return help, nil
}

// LatestHomePage returns the most recent hero block.
func (r *Repository) LatestHomePage(ctx context.Context) (*models.HomePage, error) {
	var page models.HomePage
	if err := r.db.WithContext(ctx).Order("id DESC").First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateHomePage appends a new hero block revision.
func (r *Repository) CreateHomePage(ctx context.Context, page *models.HomePage) (*models.HomePage, error) {
	if err := r.db.WithContext(ctx).Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// CreateContactForm stores a contact submission.
func (r *Repository) CreateContactForm(ctx context.Context, form *models.ContactForm) (*models.ContactForm, error) {
	if err := r.db.WithContext(ctx).Create(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

// FindSubscription returns the newsletter row for an email, if any.
func (r *Repository) FindSubscription(ctx context.Context, email string) (*models.Newsletter, error) {
	var sub models.Newsletter
	if err := r.db.WithContext(ctx).First(&sub, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateSubscription stores a newsletter subscription.
func (r *Repository) CreateSubscription(ctx context.Context, sub *models.Newsletter) (*models.Newsletter, error) {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}
