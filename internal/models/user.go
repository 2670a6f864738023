package models

// User is the single entity of the directory. The id is assigned by the
// storage backend on create and never changes; email is stored lowercased
// and is unique across all records.
type User struct {
	ID            int     `gorm:"primaryKey" json:"id"`
	FirstName     string  `gorm:"size:191;not null" json:"firstName"`
	LastName      string  `gorm:"size:191;not null" json:"lastName"`
	Email         string  `gorm:"size:191;not null;uniqueIndex" json:"email"`
	DOB           Date    `gorm:"type:date;not null" json:"dob"`
	ImageURL      string  `gorm:"not null" json:"imageUrl"`
	AcceptedTerms bool    `gorm:"not null" json:"acceptedTerms"`
	Bio           *string `json:"bio,omitempty"`
}
