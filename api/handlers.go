package api

import (
	"PostFeed/dataset"
	"PostFeed/model"
	"PostFeed/reaction"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type postsResponse struct {
	Posts []model.Post `json:"posts"`
}

type reactResponse struct {
	OperationID string            `json:"operationId"`
	Post        model.Post        `json:"post"`
	Outcome     *reaction.Outcome `json:"outcome,omitempty"`
}

func postIDFromPath(r *http.Request) (model.PostID, error) {
	id, err := model.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		return 0, withStatus(http.StatusBadRequest, err)
	}
	return id, nil
}

// Лента
func (res *Resolver) ListPosts(w http.ResponseWriter, r *http.Request) error {
	WriteJSON(w, postsResponse{Posts: res.Storage.GetPosts()}, http.StatusOK)
	return nil
}

// Детальный просмотр поста
func (res *Resolver) GetPost(w http.ResponseWriter, r *http.Request) error {
	id, err := postIDFromPath(r)
	if err != nil {
		return err
	}
	post, ok := res.Storage.GetPost(id)
	if !ok {
		return withStatus(http.StatusNotFound, fmt.Errorf("post with ID %s not found", id))
	}
	WriteJSON(w, post, http.StatusOK)
	return nil
}

// Лайк/дизлайк. Отвечает сразу после оптимистичного применения,
// с ?wait=true - после подтверждения или отката.
func (res *Resolver) React(w http.ResponseWriter, r *http.Request) error {
	id, err := postIDFromPath(r)
	if err != nil {
		return err
	}
	kind, err := model.ParseReactionKind(mux.Vars(r)["kind"])
	if err != nil {
		return withStatus(http.StatusBadRequest, err)
	}
	if _, ok := res.Storage.GetPost(id); !ok {
		return withStatus(http.StatusNotFound, fmt.Errorf("post with ID %s not found", id))
	}

	// Реакция завершается даже если клиент отключился
	op := res.Reactions.Dispatch(context.WithoutCancel(r.Context()), id, kind)

	resp := reactResponse{OperationID: op.ID}
	code := http.StatusAccepted

	if r.URL.Query().Get("wait") == "true" {
		select {
		case outcome := <-op.Done:
			resp.Outcome = &outcome
			code = http.StatusOK
		case <-r.Context().Done():
			return nil
		}
	}

	post, ok := res.Storage.GetPost(id)
	if !ok {
		return withStatus(http.StatusNotFound, fmt.Errorf("post with ID %s not found", id))
	}
	resp.Post = post
	WriteJSON(w, resp, code)
	return nil
}

// Перезагрузка ленты из источника
func (res *Resolver) Refresh(w http.ResponseWriter, r *http.Request) error {
	posts := dataset.LoadPosts(r.Context(), res.Source, res.Log)
	res.Storage.Replace(posts)
	WriteJSON(w, postsResponse{Posts: res.Storage.GetPosts()}, http.StatusOK)
	return nil
}

// Создание поста через источник
func (res *Resolver) CreatePost(w http.ResponseWriter, r *http.Request) error {
	var payload dataset.NewPost
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return withStatus(http.StatusBadRequest, fmt.Errorf("decode post: %w", err))
	}

	post, err := res.Source.CreatePost(r.Context(), payload)
	if err != nil {
		if errors.Is(err, dataset.ErrReadOnly) {
			return withStatus(http.StatusNotImplemented, err)
		}
		return err
	}
	WriteJSON(w, post, http.StatusCreated)
	return nil
}
