package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type PostID int64

func (id PostID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Разбор ID поста из строки (путь запроса)
func ParsePostID(s string) (PostID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q: %w", s, err)
	}
	return PostID(n), nil
}

type ReactionKind int

const (
	Like ReactionKind = iota
	Dislike
)

var ErrUnknownReaction = errors.New("unknown reaction kind")

func (k ReactionKind) String() string {
	switch k {
	case Like:
		return "like"
	case Dislike:
		return "dislike"
	default:
		return "ReactionKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func ParseReactionKind(s string) (ReactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like":
		return Like, nil
	case "dislike":
		return Dislike, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReaction, s)
}

func (k ReactionKind) MarshalText() ([]byte, error) {
	if k != Like && k != Dislike {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReaction, int(k))
	}
	return []byte(k.String()), nil
}

func (k *ReactionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseReactionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Счетчики реакций, оба всегда >= 0
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

func (r Reactions) Count(kind ReactionKind) int {
	if kind == Dislike {
		return r.Dislikes
	}
	return r.Likes
}

// Возвращает копию со счетчиком kind равным n (не меньше нуля)
func (r Reactions) With(kind ReactionKind, n int) Reactions {
	if n < 0 {
		n = 0
	}
	if kind == Dislike {
		r.Dislikes = n
	} else {
		r.Likes = n
	}
	return r
}

func (r Reactions) Increment(kind ReactionKind) Reactions {
	return r.With(kind, r.Count(kind)+1)
}

// Откат на единицу с полом в нуле: max(c-1, 0)
func (r Reactions) Decrement(kind ReactionKind) Reactions {
	return r.With(kind, r.Count(kind)-1)
}

// Приводит отрицательные значения к нулю
func (r Reactions) Clamp() Reactions {
	return r.With(Like, r.Likes).With(Dislike, r.Dislikes)
}

type Post struct {
	ID        PostID    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Reactions Reactions `json:"reactions"`
	Views     int       `json:"views"`
	UserID    *int64    `json:"userId,omitempty"`
}

// Глубокая копия поста: снапшот не должен ссылаться на данные хранилища
func (p Post) Clone() Post {
	cp := p
	cp.Tags = make([]string, len(p.Tags))
	copy(cp.Tags, p.Tags)
	if p.UserID != nil {
		uid := *p.UserID
		cp.UserID = &uid
	}
	return cp
}
