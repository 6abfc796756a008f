package storage

import "PostFeed/model"

type Storage interface {
	GetPosts() []model.Post // Снапшот ленты в исходном порядке

	GetPost(postID model.PostID) (model.Post, bool) // Снапшот поста по ID

	PatchReactions(postID model.PostID, mutate func(model.Reactions) model.Reactions) // Изменение реакций, неизвестный ID игнорируется

	Replace(posts []model.Post) // Полная перезагрузка ленты

	Subscribe() (<-chan model.Post, func()) // Подписка на изменения постов
}
