package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/eunji-woo/my-website-go/internal/models"
	sessionpkg "github.com/eunji-woo/my-website-go/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(username, name, password string) (*models.UserModel, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: username,
		Name:     strings.TrimSpace(name),
		Password: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks credentials and issues a session token.
func (s *Service) Login(username, password, ip, ua string, ttl time.Duration) (string, *models.UserModel, error) {
	var user models.UserModel
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := sessionpkg.Issue(s.db, user.ID, ip, ua, ttl)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout revokes the session behind the auth cookie.
func (s *Service) Logout(userID uint, sessionID string) error {
	return sessionpkg.Revoke(s.db, userID, sessionID)
}
