package category

import (
	"errors"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FindOrCreate returns the category with the given name, inserting it when
// absent. An existing category is returned unchanged.
func (s *Service) FindOrCreate(name, description string) (*models.CategoryModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	var cat models.CategoryModel
	err := s.db.Where("name = ?", name).
		Attrs(models.CategoryModel{Name: name, Description: description}).
		FirstOrCreate(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetBySlug fetches a category by slug.
func (s *Service) GetBySlug(slug string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.Where("slug = ?", slug).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// List returns all categories for the sidebar, oldest first.
func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Order("created_at ASC").Find(&cats).Error
}
