package models

// Notification is a message raised for the user, e.g. a budget limit being reached.
type Notification struct {
	Base
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Message string `gorm:"not null" json:"message"`
}
