package models

// Help holds the policy texts for the help pages. The application treats
// it as a singleton; the schema does not enforce that.
type Help struct {
	ID                     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	PrivacyPolicy          string `gorm:"column:privacy_policy;type:text;not null"`
	TermsOfService         string `gorm:"column:terms_of_service;type:text;not null"`
	FAQs                   string `gorm:"column:faqs;type:text;not null"`
	OrdersAndDelivery      string `gorm:"column:orders_and_delivery;type:text;not null"`
	ReturnsAndRefunds      string `gorm:"column:returns_and_refunds;type:text;not null"`
	PaymentMethods         string `gorm:"column:payment_methods;type:text;not null"`
}

func (Help) TableName() string {
	return "help"
}
