package models

import "fmt"

// PostModel is a blog post.
type PostModel struct {
	Base
	Title      string         `json:"title"       gorm:"not null"`
	Content    string         `json:"content"     gorm:"type:longtext"`
	AuthorID   uint           `json:"author_id"   gorm:"index;not null"`
	Author     UserModel      `json:"author"      gorm:"foreignKey:AuthorID"`
	CategoryID *uint          `json:"category_id" gorm:"index"`
	Category   *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags       []TagModel     `json:"tags,omitempty"     gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
}

func (PostModel) TableName() string { return "posts" }

// AbsoluteURL returns the canonical path of the post's detail page.
// No two posts share a URL.
func (p PostModel) AbsoluteURL() string {
	return fmt.Sprintf("/blog/%d/", p.ID)
}

// OwnerID identifies the principal allowed to edit or delete the post.
func (p PostModel) OwnerID() uint { return p.AuthorID }
