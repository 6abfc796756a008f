package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReactionKind(t *testing.T) {
	kind, err := ParseReactionKind("like")
	require.NoError(t, err)
	assert.Equal(t, Like, kind)

	kind, err = ParseReactionKind(" Dislike ")
	require.NoError(t, err)
	assert.Equal(t, Dislike, kind)

	_, err = ParseReactionKind("love")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownReaction))
}

func TestParsePostID(t *testing.T) {
	id, err := ParsePostID("42")
	require.NoError(t, err)
	assert.Equal(t, PostID(42), id)
	assert.Equal(t, "42", id.String())

	_, err = ParsePostID("abc")
	assert.Error(t, err)
}

func TestReactions_IncrementDecrement(t *testing.T) {
	r := Reactions{Likes: 3, Dislikes: 0}

	r = r.Increment(Like)
	assert.Equal(t, 4, r.Likes)
	assert.Equal(t, 0, r.Dislikes)

	r = r.Increment(Dislike)
	assert.Equal(t, 1, r.Count(Dislike))

	r = r.Decrement(Like)
	assert.Equal(t, 3, r.Likes)
}

// Откат от нуля не уходит в минус
func TestReactions_DecrementFloor(t *testing.T) {
	r := Reactions{}
	for i := 0; i < 3; i++ {
		r = r.Decrement(Like).Decrement(Dislike)
	}
	assert.Equal(t, Reactions{}, r)
}

func TestReactions_Clamp(t *testing.T) {
	assert.Equal(t, Reactions{Likes: 0, Dislikes: 2}, Reactions{Likes: -5, Dislikes: 2}.Clamp())
}

func TestPost_CloneIsDeep(t *testing.T) {
	uid := int64(7)
	p := Post{ID: 1, Tags: []string{"history"}, UserID: &uid}

	cp := p.Clone()
	cp.Tags[0] = "changed"
	*cp.UserID = 8

	assert.Equal(t, "history", p.Tags[0])
	assert.Equal(t, int64(7), *p.UserID)
}

func TestPost_CloneNilTags(t *testing.T) {
	cp := Post{ID: 1}.Clone()
	assert.NotNil(t, cp.Tags)
	assert.Len(t, cp.Tags, 0)
}

func TestReactionKind_Text(t *testing.T) {
	text, err := Dislike.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dislike", string(text))

	var k ReactionKind
	require.NoError(t, k.UnmarshalText([]byte("like")))
	assert.Equal(t, Like, k)

	_, err = ReactionKind(9).MarshalText()
	assert.Error(t, err)
}
