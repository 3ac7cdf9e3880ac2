package search

import (
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

// likeEscaper neutralizes LIKE metacharacters so the query is matched as
// a literal substring. The escape character is "|" because a backslash
// literal is parsed differently by MySQL and SQLite.
var likeEscaper = strings.NewReplacer("|", "||", "%", "|%", "_", "|_")

// Search returns the posts whose title or content contains the query as a
// literal substring, newest first. Matching uses the store's LIKE
// operator, so it is case-insensitive; non-matching posts are excluded
// entirely.
func (s *Service) Search(query string) ([]models.PostModel, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	like := "%" + likeEscaper.Replace(query) + "%"
	var posts []models.PostModel
	err := s.db.Preload("Author").Preload("Category").
		Where("title LIKE ? ESCAPE '|' OR content LIKE ? ESCAPE '|'", like, like).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}
