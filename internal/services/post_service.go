package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	Create(userID, title, content string) (models.Post, error)
	ListForOwner(userID string) ([]models.Post, error)
	Update(id, userID, title, content string) (models.Post, error)
	Delete(id, userID string) error
}

// PostService provides owner-scoped CRUD for posts. It mirrors TaskService;
// the two resources differ only in their content field.
type PostService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB, events EventServiceProvider) *PostService {
	return &PostService{db: db, events: events}
}

// Create persists a new post owned by userID.
func (s *PostService) Create(userID, title, content string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	post := models.Post{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	_, err := s.db.Exec("INSERT INTO posts(id, user_id, title, content) VALUES(?, ?, ?, ?)",
		post.ID, post.UserID, post.Title, post.Content)
	if err != nil {
		return models.Post{}, err
	}

	s.events.Record("post.created", "Post created: "+post.Title, &post.ID)
	return s.getForOwner(post.ID, userID)
}

// ListForOwner returns all posts owned by userID.
func (s *PostService) ListForOwner(userID string) ([]models.Post, error) {
	rows, err := s.db.Query("SELECT id, user_id, title, content, created_at FROM posts WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update replaces a post's fields with the (id, owner) filter.
func (s *PostService) Update(id, userID, title, content string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	res, err := s.db.Exec("UPDATE posts SET title = ?, content = ? WHERE id = ? AND user_id = ?",
		title, content, id, userID)
	if err != nil {
		return models.Post{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Post{}, err
	} else if n == 0 {
		return models.Post{}, ErrNotFound
	}

	s.events.Record("post.updated", "Post updated: "+title, &id)
	return s.getForOwner(id, userID)
}

// Delete removes a post with the (id, owner) filter.
func (s *PostService) Delete(id, userID string) error {
	res, err := s.db.Exec("DELETE FROM posts WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	s.events.Record("post.deleted", "Post deleted", &id)
	return nil
}

func (s *PostService) getForOwner(id, userID string) (models.Post, error) {
	var post models.Post
	row := s.db.QueryRow("SELECT id, user_id, title, content, created_at FROM posts WHERE id = ? AND user_id = ?", id, userID)
	err := row.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}
