package models

// Tag labels blogs through the BlogTag join table. Names are unique with
// the store's (case-sensitive) collation.
type Tag struct {
	ID       int       `json:"id" gorm:"primaryKey"`
	Guid     string    `json:"guid" gorm:"type:text;not null"`
	Name     string    `json:"name" gorm:"size:50;not null;uniqueIndex:idx_tags_name"`
	BlogTags []BlogTag `json:"blogTags,omitempty" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}
