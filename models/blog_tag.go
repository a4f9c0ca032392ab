package models

// BlogTag is the many-to-many edge between blogs and tags. It carries no
// identity of its own; the composite key is (BlogID, TagID) and rows are
// removed by the store's cascade when either side is deleted.
type BlogTag struct {
	BlogID int `json:"blogId" gorm:"primaryKey;autoIncrement:false"`
	TagID  int `json:"tagId" gorm:"primaryKey;autoIncrement:false"`

	Blog Blog `json:"blog,omitempty" gorm:"foreignKey:BlogID;references:ID"`
	Tag  Tag  `json:"tag,omitempty" gorm:"foreignKey:TagID;references:ID"`
}
