package tag

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

// FindOrCreate returns the tag with the given name, inserting it when
// absent. An existing tag is returned unchanged.
func (s *Service) FindOrCreate(name string) (*models.TagModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("tag name is required")
	}

	var t models.TagModel
	err := s.db.Where("name = ?", name).
		Attrs(models.TagModel{Name: name}).
		FirstOrCreate(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindOrCreateAll resolves a list of tag names, skipping blanks.
func (s *Service) FindOrCreateAll(names []string) ([]models.TagModel, error) {
	tags := make([]models.TagModel, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, err := s.FindOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *t)
	}
	return tags, nil
}

// GetBySlug fetches a tag by slug.
func (s *Service) GetBySlug(slug string) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.Where("slug = ?", slug).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
