package post

import (
	"errors"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/models"
	"github.com/eunji-woo/my-website-go/internal/modules/content/category"
	"github.com/eunji-woo/my-website-go/internal/modules/content/tag"
	"github.com/eunji-woo/my-website-go/internal/policy"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("post not found")

// Service handles post business logic.
type Service struct {
	db         *gorm.DB
	categories *category.Service
	tags       *tag.Service
}

func NewService(db *gorm.DB, categories *category.Service, tags *tag.Service) *Service {
	return &Service{db: db, categories: categories, tags: tags}
}

// Create persists a new post for the author, resolving category and tags
// by name.
func (s *Service) Create(form *PostForm, authorID uint) (*models.PostModel, error) {
	p := models.PostModel{
		Title:    form.Title,
		Content:  form.Content,
		AuthorID: authorID,
	}

	if err := s.resolveTaxonomy(form, &p); err != nil {
		return nil, err
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return s.GetByID(p.ID)
}

// Update applies the form to an existing post. Only the author may edit.
func (s *Service) Update(id uint, form *PostForm, pr policy.Principal) (*models.PostModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(pr, policy.ActionEditPost, p) {
		return nil, policy.ErrPermissionDenied
	}

	p.Title = form.Title
	p.Content = form.Content
	p.CategoryID = nil
	p.Category = nil
	if err := s.resolveTaxonomy(form, p); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       p.Title,
		"content":     p.Content,
		"category_id": p.CategoryID,
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(p).Association("Tags").Replace(p.Tags); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a post. Only the author may delete.
func (s *Service) Delete(id uint, pr policy.Principal) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !policy.Can(pr, policy.ActionDeletePost, p) {
		return policy.ErrPermissionDenied
	}
	return s.db.Delete(p).Error
}

// GetByID fetches a single post with author, category and tags.
func (s *Service) GetByID(id uint) (*models.PostModel, error) {
	var p models.PostModel
	err := s.db.Preload("Author").Preload("Category").Preload("Tags").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all posts, newest first.
func (s *Service) List() ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.listQuery().Find(&posts).Error
	return posts, err
}

// ListByCategorySlug returns posts in the category, newest first.
func (s *Service) ListByCategorySlug(slug string) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.listQuery().
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("categories.slug = ? AND categories.deleted_at IS NULL", slug).
		Find(&posts).Error
	return posts, err
}

// ListByTagSlug returns posts carrying the tag, newest first.
func (s *Service) ListByTagSlug(slug string) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.listQuery().
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.slug = ? AND tags.deleted_at IS NULL", slug).
		Find(&posts).Error
	return posts, err
}

func (s *Service) listQuery() *gorm.DB {
	return s.db.Model(&models.PostModel{}).
		Preload("Author").Preload("Category").
		Order("posts.created_at DESC, posts.id DESC")
}

func (s *Service) resolveTaxonomy(form *PostForm, p *models.PostModel) error {
	if name := strings.TrimSpace(form.Category); name != "" {
		cat, err := s.categories.FindOrCreate(name, "")
		if err != nil {
			return err
		}
		p.CategoryID = &cat.ID
		p.Category = cat
	}

	names := strings.Split(form.Tags, ",")
	tags, err := s.tags.FindOrCreateAll(names)
	if err != nil {
		return err
	}
	p.Tags = tags
	return nil
}
