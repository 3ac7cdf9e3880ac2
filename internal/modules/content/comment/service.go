package comment

import (
	"errors"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/models"
	"github.com/eunji-woo/my-website-go/internal/policy"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("comment not found")
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyText    = errors.New("comment text is required")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new comment on the post. An anonymous principal gets
// the shared guest author.
func (s *Service) Create(postID uint, text string, p policy.Principal) (*models.CommentModel, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	var post models.PostModel
	if err := s.db.Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	authorID := p.UserID
	if !p.Authenticated() {
		guest, err := s.guest()
		if err != nil {
			return nil, err
		}
		authorID = guest.ID
	}

	cm := models.CommentModel{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.db.Create(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

// GetForEdit loads the comment for its owner's edit form; anyone else gets
// a permission error before any page is rendered.
func (s *Service) GetForEdit(id uint, p policy.Principal) (*models.CommentModel, error) {
	cm, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(p, policy.ActionEditComment, cm) {
		return nil, policy.ErrPermissionDenied
	}
	return cm, nil
}

// Edit replaces the comment text in place. Identity (id, post, author) is
// unchanged; non-owners are rejected without touching the row.
func (s *Service) Edit(id uint, text string, p policy.Principal) (*models.CommentModel, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	cm, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(p, policy.ActionEditComment, cm) {
		return nil, policy.ErrPermissionDenied
	}

	if err := s.db.Model(cm).Update("text", text).Error; err != nil {
		return nil, err
	}
	cm.Text = text
	return cm, nil
}

// Delete removes the comment. Sibling comments on the same post are not
// affected.
func (s *Service) Delete(id uint, p policy.Principal) (*models.CommentModel, error) {
	cm, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(p, policy.ActionDeleteComment, cm) {
		return nil, policy.ErrPermissionDenied
	}

	if err := s.db.Delete(cm).Error; err != nil {
		return nil, err
	}
	return cm, nil
}

// ForPost returns the post's live comments ordered by creation.
func (s *Service) ForPost(postID uint) ([]models.CommentModel, error) {
	var comments []models.CommentModel
	err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// CountForPost returns the number of live comments on the post.
func (s *Service) CountForPost(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.CommentModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *Service) getByID(id uint) (*models.CommentModel, error) {
	var cm models.CommentModel
	if err := s.db.Preload("Author").First(&cm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cm, nil
}

// guest returns the shared guest user, creating it on first use.
func (s *Service) guest() (*models.UserModel, error) {
	var guest models.UserModel
	err := s.db.Where("username = ?", models.GuestUsername).
		Attrs(models.UserModel{Username: models.GuestUsername, Name: models.GuestUsername, Password: "!"}).
		FirstOrCreate(&guest).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}
