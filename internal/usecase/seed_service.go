package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/platform/id"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

const defaultSeedWorkers = 8

// ImageFetcher supplies inline portrait images for seeded players.
type ImageFetcher interface {
	FetchImage(ctx context.Context, rawURL string) (string, error)
}

type SeedService struct {
	playerRepo player.Repository
	images     ImageFetcher
	idGen      id.Generator
	logger     *logging.Logger
	workers    int
}

// NewSeedService builds the roster seeder. The image fetcher may be
// nil, in which case players are seeded without portraits.
func NewSeedService(playerRepo player.Repository, images ImageFetcher, idGen id.Generator, logger *logging.Logger, workers int) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultSeedWorkers
	}
	return &SeedService{
		playerRepo: playerRepo,
		images:     images,
		idGen:      idGen,
		logger:     logger,
		workers:    workers,
	}
}

// Seed populates the player catalog with the fixture roster. It is
// idempotent: a non-empty catalog is left untouched and reports zero
// inserted players.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Seed")
	defer span.End()

	count, err := s.playerRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	items := make([]player.Player, len(seedRoster))
	for i, fixture := range seedRoster {
		playerID, err := s.idGen.NewID()
		if err != nil {
			return 0, fmt.Errorf("generate player id: %w", err)
		}
		items[i] = fixture
		items[i].ID = playerID
	}

	if s.images != nil {
		s.fetchPortraits(ctx, items)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, fmt.Errorf("%w: seed player %s: %v", ErrInvalidInput, item.Name, err)
		}
	}

	if err := s.playerRepo.InsertMany(ctx, items); err != nil {
		return 0, fmt.Errorf("insert seed players: %w", err)
	}

	return len(items), nil
}

// fetchPortraits downloads images on a bounded worker pool. Failures
// leave the image empty; seeding proceeds regardless.
func (s *SeedService) fetchPortraits(ctx context.Context, items []player.Player) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		s.logger.WarnContext(ctx, "portrait worker pool unavailable", "error", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range items {
		idx := i
		imageURL := seedImageURLs[i%len(seedImageURLs)]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			image, fetchErr := s.images.FetchImage(ctx, imageURL)
			if fetchErr != nil {
				s.logger.WarnContext(ctx, "portrait fetch skipped",
					"player", items[idx].Name,
					"error", fetchErr,
				)
				return
			}
			items[idx].ImageBase64 = image
		})
		if submitErr != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "portrait task rejected", "player", items[idx].Name, "error", submitErr)
		}
	}
	wg.Wait()
}
