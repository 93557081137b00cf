package repositories

import (
	"admin-backoffice/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ListQuery) ([]models.Article, int64, error)
	UpdateStatus(id uint, status models.ArticleStatus) error
	Delete(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

var articleList = listScope{
	table: "articles",
	filterCols: map[string]string{
		"status":    "status",
		"author_id": "author_id",
	},
	intFilters: map[string]bool{"author_id": true},
	sortCols: map[string]string{
		"title":      "title",
		"updated_at": "updated_at",
		"created_at": "created_at",
	},
	defaultSort:  "id desc",
	searchFields: []string{"title"},
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ListQuery) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{})
	if params.Type != "" {
		query = query.Where("articles.type = ?", params.Type)
	}

	query, err := articleList.apply(query, params)
	if err != nil {
		return nil, 0, err
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err = query.Preload("Author").
		Order(articleList.order(params)).
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) UpdateStatus(id uint, status models.ArticleStatus) error {
	res := r.db.Model(&models.Article{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
