package api

// It serves as dependency injection for the HTTP surface, add any
// dependencies handlers require here.

import (
	"PostFeed/dataset"
	"PostFeed/internal/logger"
	"PostFeed/reaction"
	"PostFeed/storage"
)

type Resolver struct {
	Storage   storage.Storage
	Reactions *reaction.Controller
	Source    dataset.Source
	Log       *logger.Logger
}
