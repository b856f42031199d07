package repository

import (
	"context"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForumRepository handles lookups of forums, threads and posts
type ForumRepository struct {
	db *gorm.DB
}

// NewForumRepository creates a new forum repository
func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{db: db}
}

// CreateForum creates a new forum
func (r *ForumRepository) CreateForum(ctx context.Context, forum *models.Forum) error {
	return r.db.WithContext(ctx).Create(forum).Error
}

// CreateThread creates a new thread
func (r *ForumRepository) CreateThread(ctx context.Context, thread *models.ForumThread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

// CreatePost creates a new post
func (r *ForumRepository) CreatePost(ctx context.Context, post *models.ForumPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetForumByID retrieves a forum by ID
func (r *ForumRepository) GetForumByID(ctx context.Context, id uuid.UUID) (*models.Forum, error) {
	var forum models.Forum
	err := r.db.WithContext(ctx).First(&forum, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &forum, nil
}

// GetThreadByID retrieves a thread with its forum
func (r *ForumRepository) GetThreadByID(ctx context.Context, id uuid.UUID) (*models.ForumThread, error) {
	var thread models.ForumThread
	err := r.db.WithContext(ctx).Preload("Forum").First(&thread, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetPostByID retrieves a post with its thread
func (r *ForumRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	var post models.ForumPost
	err := r.db.WithContext(ctx).Preload("Thread").First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CountPostsByAuthor counts the author's active posts
func (r *ForumRepository) CountPostsByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ForumPost{}).
		Where("author_id = ? AND status = ?", authorID, models.ContentStatusActive).
		Count(&count).Error
	return count, err
}
