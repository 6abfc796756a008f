package dataset

import (
	"PostFeed/internal/logger"
	"PostFeed/model"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
)

var ErrReadOnly = errors.New("post source is read-only")

// Данные для создания поста
type NewPost struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tags   []string `json:"tags"`
	UserID *int64   `json:"userId,omitempty"`
}

// Source is where the feed comes from. A remote API client can replace
// the static implementation without touching the rest of the app.
type Source interface {
	FetchPosts(ctx context.Context) ([]model.Post, error)
	CreatePost(ctx context.Context, payload NewPost) (model.Post, error)
}

// Static serves the embedded dataset, or a file on disk when path is set.
type Static struct {
	path string
}

func NewStatic(path string) *Static {
	return &Static{path: path}
}

func (s *Static) FetchPosts(ctx context.Context) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := bundled
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
		}
	}
	return Parse(bytes.NewReader(data))
}

// Коллекция не пополняется во время работы
func (s *Static) CreatePost(ctx context.Context, payload NewPost) (model.Post, error) {
	return model.Post{}, ErrReadOnly
}

// LoadPosts fetches the feed; on failure the feed is empty, never partial.
func LoadPosts(ctx context.Context, src Source, log *logger.Logger) []model.Post {
	posts, err := src.FetchPosts(ctx)
	if err != nil {
		log.Warnf("fetch posts: %v, using empty feed", err)
		return []model.Post{}
	}
	log.Infof("loaded %d posts", len(posts))
	return posts
}
