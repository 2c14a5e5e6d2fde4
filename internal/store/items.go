package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvolkov/inventory_app/internal/models"
)

// ErrNotFound is returned when no item exists with the requested id.
var ErrNotFound = errors.New("item not found")

// ItemStore owns all item rows. Handlers receive an explicit store instead of
// sharing a package-level database handle.
type ItemStore struct {
	DB *gorm.DB
}

func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{DB: db}
}

// List returns every item, newest first. Ties on created_at fall back to
// insertion order.
func (s *ItemStore) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.WithContext(ctx).Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

func (s *ItemStore) Get(ctx context.Context, id int) (*models.Item, error) {
	item := models.Item{}
	if err := s.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return &item, nil
}

// Create persists a new item. The id and created_at are assigned here and are
// immutable afterwards.
func (s *ItemStore) Create(ctx context.Context, item *models.Item) error {
	if err := s.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// Update overwrites the four mutable fields of an existing item. The id and
// created_at are never altered.
func (s *ItemStore) Update(ctx context.Context, id int, name, description string, quantity int, price float64) (*models.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Description = description
	item.Quantity = quantity
	item.Price = price

	if err := s.DB.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("updating item %d: %w", id, err)
	}
	return item, nil
}

// Delete removes an item permanently.
func (s *ItemStore) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&models.Item{}, id).Error; err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	return nil
}
