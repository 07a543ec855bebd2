package repository

import (
	"context"

	"golang-portfolio-sentiment/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsArticleRepository archives scored articles.
type NewsArticleRepository interface {
	CreateIgnoreConflict(ctx context.Context, articles []entity.NewsArticle) (int64, error)
	FindRecent(ctx context.Context, symbols []string, limit int) ([]entity.NewsArticle, error)
}

// NewNewsArticleRepository creates a new instance of NewsArticleRepository.
func NewNewsArticleRepository(db *gorm.DB) NewsArticleRepository {
	return &newsArticleRepository{db: db}
}

type newsArticleRepository struct {
	db *gorm.DB
}

// CreateIgnoreConflict inserts the articles, skipping any whose hash already exists.
// It returns the number of rows inserted.
func (r *newsArticleRepository) CreateIgnoreConflict(ctx context.Context, articles []entity.NewsArticle) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash_identifier"}},
		DoNothing: true,
	}).Create(&articles)
	return tx.RowsAffected, tx.Error
}

// FindRecent returns the newest archived articles, optionally restricted to symbols.
func (r *newsArticleRepository) FindRecent(ctx context.Context, symbols []string, limit int) ([]entity.NewsArticle, error) {
	var articles []entity.NewsArticle

	q := r.db.WithContext(ctx).Order("published_at DESC NULLS LAST").Order("id DESC")
	if len(symbols) > 0 {
		q = q.Where("symbol IN ?", symbols)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
