package dataset

import (
	"PostFeed/internal/logger"
	"PostFeed/model"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	posts, err := Parse(strings.NewReader(`{"posts": [
		{"id": 1, "title": "t", "body": "b", "tags": ["a", "b"],
		 "reactions": {"likes": 3, "dislikes": 1}, "views": 10, "userId": 5}
	]}`))

	require.NoError(t, err)
	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, model.PostID(1), p.ID)
	assert.Equal(t, "t", p.Title)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, model.Reactions{Likes: 3, Dislikes: 1}, p.Reactions)
	assert.Equal(t, 10, p.Views)
	require.NotNil(t, p.UserID)
	assert.Equal(t, int64(5), *p.UserID)
}

// Отсутствующие поля получают значения по умолчанию
func TestParse_Defaults(t *testing.T) {
	posts, err := Parse(strings.NewReader(`{"posts": [{"id": 7, "title": "bare"}]}`))

	require.NoError(t, err)
	require.Len(t, posts, 1)
	p := posts[0]
	assert.NotNil(t, p.Tags)
	assert.Len(t, p.Tags, 0)
	assert.Equal(t, model.Reactions{}, p.Reactions)
	assert.Equal(t, 0, p.Views)
	assert.Nil(t, p.UserID)
}

func TestParse_ClampsNegative(t *testing.T) {
	posts, err := Parse(strings.NewReader(`{"posts": [
		{"id": 1, "reactions": {"likes": -2, "dislikes": 4}, "views": -1}
	]}`))

	require.NoError(t, err)
	assert.Equal(t, model.Reactions{Likes: 0, Dislikes: 4}, posts[0].Reactions)
	assert.Equal(t, 0, posts[0].Views)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":   `{"posts": [`,
		"wrong type": `{"posts": [{"id": "x"}]}`,
		"missing id": `{"posts": [{"id": 1}, {"title": "no id"}]}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			posts, err := Parse(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
			assert.Nil(t, posts)
		})
	}
}

func TestParse_NoPostsKey(t *testing.T) {
	posts, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Len(t, posts, 0)
}

func TestStatic_FetchBundled(t *testing.T) {
	posts, err := NewStatic("").FetchPosts(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.Equal(t, model.PostID(1), posts[0].ID)

	last := posts[len(posts)-1]
	assert.Len(t, last.Tags, 0)
	assert.Equal(t, model.Reactions{}, last.Reactions)
}

// Битый набор данных дает пустую ленту, а не частичную
func TestLoadPosts_MalformedFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"posts": [{"id": 1}, {"id": true}]}`), 0o644))

	posts := LoadPosts(context.Background(), NewStatic(path), logger.Discard())

	assert.NotNil(t, posts)
	assert.Len(t, posts, 0)
}

func TestLoadPosts_Bundled(t *testing.T) {
	posts := LoadPosts(context.Background(), NewStatic(""), logger.Discard())
	assert.NotEmpty(t, posts)
}

func TestStatic_FetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"posts": [{"id": 42, "title": "from disk"}]}`), 0o644))

	posts, err := NewStatic(path).FetchPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "from disk", posts[0].Title)
}

func TestStatic_MissingFile(t *testing.T) {
	src := NewStatic(filepath.Join(t.TempDir(), "absent.json"))

	_, err := src.FetchPosts(context.Background())
	require.Error(t, err)

	posts := LoadPosts(context.Background(), src, logger.Discard())
	assert.Len(t, posts, 0)
}

func TestStatic_CreatePostReadOnly(t *testing.T) {
	_, err := NewStatic("").CreatePost(context.Background(), NewPost{Title: "new"})
	assert.ErrorIs(t, err, ErrReadOnly)
}
