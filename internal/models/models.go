package models

// User is a registered account. Password holds the bcrypt hash and is
// serialized as-is in listings, matching the existing API contract.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"password" gorm:"not null"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Description string  `json:"description" gorm:"not null"`
	ImageAlt    string  `json:"image_alt" gorm:"not null"`
	ImageURL    string  `json:"image_url" gorm:"not null"`
}
