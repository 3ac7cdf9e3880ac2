package models

import "gorm.io/gorm"

// CategoryModel represents a post category.
type CategoryModel struct {
	Base
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Slug        string `json:"slug" gorm:"index;not null"`

	Posts []PostModel `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }

// BeforeSave recomputes the slug so it always tracks the current name.
func (c *CategoryModel) BeforeSave(tx *gorm.DB) error {
	c.Slug = Slugify(c.Name)
	return nil
}
