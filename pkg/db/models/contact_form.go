package models

// ContactForm is a submitted contact message; a write-only inbox table.
type ContactForm struct {
	ID      uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name    *string `gorm:"column:name;size:100"`
	Email   string  `gorm:"column:email;size:254;not null"`
	Message string  `gorm:"column:message;type:text;not null"`
}
