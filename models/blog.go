package models

import "time"

// Blog is a published post. The author is kept as a weak integer reference
// so the users table can live in another service without breaking reads.
type Blog struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Guid        string    `json:"guid" gorm:"type:text;not null"`
	Title       string    `json:"title" gorm:"size:200;not null;uniqueIndex:idx_blogs_title"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Rating      *float64  `json:"rating,omitempty" gorm:"type:numeric(4,2)"`
	PublishDate time.Time `json:"publishDate" gorm:"not null"`
	UserID      int       `json:"userId" gorm:"index"`
	BlogTags    []BlogTag `json:"blogTags,omitempty" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
}
