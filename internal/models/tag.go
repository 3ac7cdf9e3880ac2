package models

import "gorm.io/gorm"

// TagModel represents a post tag, attached via the post_tags join table.
type TagModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"index;not null"`
}

func (TagModel) TableName() string { return "tags" }

func (t *TagModel) BeforeSave(tx *gorm.DB) error {
	t.Slug = Slugify(t.Name)
	return nil
}
