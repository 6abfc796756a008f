package memory

import (
	"PostFeed/model"
	"sync"
)

const subscriberBuffer = 16

type InMemoryStorage struct {
	mu         sync.RWMutex
	posts      []*model.Post                //Лента в порядке загрузки
	postSearch map[model.PostID]*model.Post //Быстрый поиск постов по ID

	subscribers map[chan model.Post]struct{} //Подписчики на изменения
}

func New(posts []model.Post) *InMemoryStorage {
	s := &InMemoryStorage{
		subscribers: make(map[chan model.Post]struct{}),
	}
	s.load(posts)
	return s
}

// Заполнение ленты; дубликаты по ID отбрасываются, остается первый
func (s *InMemoryStorage) load(posts []model.Post) {
	s.posts = make([]*model.Post, 0, len(posts))
	s.postSearch = make(map[model.PostID]*model.Post, len(posts))

	for _, p := range posts {
		if _, ok := s.postSearch[p.ID]; ok {
			continue
		}
		post := p.Clone()
		post.Reactions = post.Reactions.Clamp()
		if post.Views < 0 {
			post.Views = 0
		}
		s.posts = append(s.posts, &post)
		s.postSearch[post.ID] = &post
	}
}

// Снапшот всей ленты
func (s *InMemoryStorage) GetPosts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		result = append(result, post.Clone())
	}
	return result
}

// Запрос поста по ID
func (s *InMemoryStorage) GetPost(postID model.PostID) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.postSearch[postID]
	if !ok {
		return model.Post{}, false
	}
	return post.Clone(), true
}

// Изменение счетчиков реакций. mutate выполняется под блокировкой и
// получает текущее значение, поэтому чтение-изменение-запись атомарно.
func (s *InMemoryStorage) PatchReactions(postID model.PostID, mutate func(model.Reactions) model.Reactions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postSearch[postID]
	if !ok {
		return
	}

	post.Reactions = mutate(post.Reactions).Clamp()
	s.publish(post.Clone())
}

// Перезагрузка ленты (pull to refresh)
func (s *InMemoryStorage) Replace(posts []model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(posts)
	for _, post := range s.posts {
		s.publish(post.Clone())
	}
}

// Рассылка подписчикам, медленные подписчики пропускают обновление.
// Вызывается под s.mu.
func (s *InMemoryStorage) publish(post model.Post) {
	for ch := range s.subscribers {
		select {
		case ch <- post:
		default:
		}
	}
}

// Подписка на изменения постов
func (s *InMemoryStorage) Subscribe() (<-chan model.Post, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan model.Post, subscriberBuffer)
	s.subscribers[ch] = struct{}{}

	var once sync.Once
	rmSubscription := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.subscribers, ch)
			close(ch)
		})
	}

	return ch, rmSubscription
}
