package models

// CommentModel is a comment on a post. Deletion is soft, so the live
// comment count of a post is the number of undeleted rows referencing it.
type CommentModel struct {
	Base
	PostID   uint      `json:"post_id"   gorm:"index;not null"`
	Post     PostModel `json:"-"         gorm:"foreignKey:PostID"`
	AuthorID uint      `json:"author_id" gorm:"index;not null"`
	Author   UserModel `json:"author"    gorm:"foreignKey:AuthorID"`
	Text     string    `json:"text"      gorm:"type:text;not null"`
}

func (CommentModel) TableName() string { return "comments" }

// OwnerID identifies the principal allowed to edit or delete the comment.
func (c CommentModel) OwnerID() uint { return c.AuthorID }
