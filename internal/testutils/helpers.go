package testutils

import (
	"PostFeed/model"
	"PostFeed/storage"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тестовый пост с заданными реакциями
func NewTestPost(id model.PostID, likes, dislikes int) model.Post {
	return model.Post{
		ID:        id,
		Title:     fmt.Sprintf("Post %d", id),
		Body:      fmt.Sprintf("Body of post %d", id),
		Tags:      []string{"history", "crime"},
		Reactions: model.Reactions{Likes: likes, Dislikes: dislikes},
		Views:     100 + int(id),
	}
}

// Лента из n постов с ID 1..n
func NewTestPosts(n int) []model.Post {
	posts := make([]model.Post, n)
	for i := range posts {
		posts[i] = NewTestPost(model.PostID(i+1), i, 0)
	}
	return posts
}

func RequirePost(t *testing.T, s storage.Storage, id model.PostID) model.Post {
	t.Helper()
	post, ok := s.GetPost(id)
	require.True(t, ok, "post %s not found", id)
	return post
}

// Проверяет совпадение постов без учета реакций
func AssertPostEqual(t *testing.T, expected, actual model.Post) {
	t.Helper()
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Title, actual.Title)
	assert.Equal(t, expected.Body, actual.Body)
	assert.Equal(t, expected.Tags, actual.Tags)
	assert.Equal(t, expected.Views, actual.Views)
	assert.Equal(t, expected.UserID, actual.UserID)
}

// Ожидание значения из канала с таймаутом
func Receive[T any](t *testing.T, ch <-chan T, timeout time.Duration) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(timeout):
		require.FailNow(t, "timed out waiting for value")
	}
	var zero T
	return zero
}
