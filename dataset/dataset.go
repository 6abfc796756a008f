// Package dataset loads the bundled post collection.
package dataset

import (
	"PostFeed/model"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

//go:embed posts.json
var bundled []byte

var ErrMalformed = errors.New("malformed dataset")

// Запись в том виде, в котором она лежит в JSON; необязательные поля - указатели
type record struct {
	ID        *model.PostID    `json:"id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Tags      []string         `json:"tags"`
	Reactions *model.Reactions `json:"reactions"`
	Views     *int             `json:"views"`
	UserID    *int64           `json:"userId"`
}

type document struct {
	Posts []record `json:"posts"`
}

// Parse decodes a {"posts": [...]} document. Any malformed record fails the
// whole document; there is no partial result.
func Parse(r io.Reader) ([]model.Post, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	posts := make([]model.Post, 0, len(doc.Posts))
	for i, rec := range doc.Posts {
		if rec.ID == nil {
			return nil, fmt.Errorf("%w: post #%d has no id", ErrMalformed, i)
		}
		posts = append(posts, normalize(rec))
	}
	return posts, nil
}

// Значения по умолчанию: tags = [], reactions = {0, 0}, views = 0
func normalize(rec record) model.Post {
	post := model.Post{
		ID:     *rec.ID,
		Title:  rec.Title,
		Body:   rec.Body,
		Tags:   rec.Tags,
		UserID: rec.UserID,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if rec.Reactions != nil {
		post.Reactions = rec.Reactions.Clamp()
	}
	if rec.Views != nil && *rec.Views > 0 {
		post.Views = *rec.Views
	}
	return post
}
