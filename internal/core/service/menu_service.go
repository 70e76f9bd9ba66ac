package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetcrumb/menu-system/internal/api/metrics"
	"github.com/sweetcrumb/menu-system/internal/core/domain"
	"github.com/sweetcrumb/menu-system/internal/core/ports"
)

// imageFolder is the object-key prefix on the image host.
const imageFolder = "menu_items"

type MenuService struct {
	repo   ports.MenuRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, images ports.ImageStore, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, images: images, logger: logger}
}

// Create validates required fields, uploads the image, then persists the
// item. The upload happens first: an upload failure means nothing is
// persisted. There is no compensating delete in the opposite direction — a
// store-write failure after a successful upload leaves the object orphaned
// on the host.
func (s *MenuService) Create(ctx context.Context, input ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	if input.Name == "" || input.Description == "" || input.Price == "" || input.Image == nil {
		return nil, domain.ErrMissingFields
	}
	if input.Stock < 0 {
		return nil, domain.ErrMissingFields
	}

	start := time.Now()
	url, err := s.images.Upload(ctx, imageKey(input.Image.Filename), input.Image.ContentType, input.Image.Content)
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("filename", input.Image.Filename).Msg("image upload failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrImageUpload, err)
	}
	metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
	metrics.ImageUploadDuration.Observe(time.Since(start).Seconds())

	item := &domain.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       url,
		Stock:       input.Stock,
		StockStatus: domain.AvailabilityFor(input.Stock),
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		// The uploaded object is now orphaned; there is no cleanup path.
		s.logger.Error().Err(err).Str("image", url).Msg("failed to persist menu item")
		return nil, err
	}

	metrics.MenuItemsCreatedTotal.WithLabelValues(string(created.StockStatus)).Inc()
	s.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

// List returns the full menu, newest first.
func (s *MenuService) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.repo.List(ctx)
}

// Update applies a partial edit. A supplied image replaces the stored URL;
// the previous object is not deleted from the host. stockStatus is
// recomputed whenever stock changes.
func (s *MenuService) Update(ctx context.Context, id string, input ports.UpdateMenuItemInput) (*domain.MenuItem, error) {
	update := ports.MenuItemUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if input.Stock != nil {
		stock := *input.Stock
		status := domain.AvailabilityFor(stock)
		update.Stock = &stock
		update.StockStatus = &status
	}

	if input.Image != nil {
		url, err := s.images.Upload(ctx, imageKey(input.Image.Filename), input.Image.ContentType, input.Image.Content)
		if err != nil {
			metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %v", domain.ErrImageUpload, err)
		}
		metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
		update.Image = &url
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("menu item updated")
	return updated, nil
}

// UpdateStock is the narrow stock-only write path. It goes through the same
// derivation as every other write.
func (s *MenuService) UpdateStock(ctx context.Context, id string, stock int) (*domain.MenuItem, error) {
	status := domain.AvailabilityFor(stock)
	updated, err := s.repo.Update(ctx, id, ports.MenuItemUpdate{
		Stock:       &stock,
		StockStatus: &status,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Int("stock", stock).Str("status", string(status)).Msg("stock updated")
	return updated, nil
}

// Delete removes the item and returns its last snapshot. Deletion is
// physical; the stored image stays on the host.
func (s *MenuService) Delete(ctx context.Context, id string) (*domain.MenuItem, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("name", deleted.Name).Msg("menu item deleted")
	return deleted, nil
}

// imageKey builds a unique object key preserving the original extension,
// e.g. menu_items/1717430400-7A8B9C2D.png.
func imageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s/%d%s", imageFolder, time.Now().UnixNano(), ext)
	}
	return fmt.Sprintf("%s/%d-%08X%s", imageFolder, time.Now().Unix(), b, ext)
}
