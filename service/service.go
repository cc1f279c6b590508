package service

import (
	"sync"

	"github.com/avolkov/mediatheca/config"
	"github.com/avolkov/mediatheca/internal/jsonlog"
	"github.com/avolkov/mediatheca/repository"
)

type Service interface {
	users
	tokens
	categories
	genres
	titles
	reviews
	comments
	failedValidation(map[string]string) error
}

// service defines the service layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
	}
}
