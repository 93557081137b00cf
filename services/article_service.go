package services

import (
	"errors"
	"fmt"

	"admin-backoffice/models"
	"admin-backoffice/repositories"

	"gorm.io/gorm"
)

const DefaultArticleType = "news"

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	GetArticles(params models.ListQuery) ([]models.Article, int64, error)
	DeleteArticle(id uint) error
	UpdateStatus(id uint, status models.ArticleStatus) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.Article, error) {
	articleType := req.Type
	if articleType == "" {
		articleType = DefaultArticleType
	}

	article := &models.Article{
		Title:    req.Title,
		Type:     articleType,
		Status:   models.ArticleStatusDraft,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "article not found")
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ListQuery) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params)
}

func (s *articleService) DeleteArticle(id uint) error {
	if err := s.articleRepo.Delete(id); err != nil {
		return notFound(err, "article not found")
	}
	return nil
}

func (s *articleService) UpdateStatus(id uint, status models.ArticleStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid article status %q", status)
	}
	if err := s.articleRepo.UpdateStatus(id, status); err != nil {
		return notFound(err, "article not found")
	}
	return nil
}

// notFound turns gorm's record-not-found into the typed error the HTTP layer
// understands and passes every other error through.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: message}
	}
	return err
}
