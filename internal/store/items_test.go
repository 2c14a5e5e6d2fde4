package store

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mvolkov/inventory_app/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Item{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func TestCreateAndGet(t *testing.T) {
	s := NewItemStore(initTestDB(t))
	ctx := context.Background()

	item := models.Item{
		Name:        "Laptop",
		Description: "Lenovo ThinkPad X1",
		Quantity:    5,
		Price:       1200.00,
	}
	require.NoError(t, s.Create(ctx, &item))
	require.NotZero(t, item.ID)
	require.False(t, item.CreatedAt.IsZero())

	got, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, item.ID, got.ID)
	require.Equal(t, "Laptop", got.Name)
	require.Equal(t, "Lenovo ThinkPad X1", got.Description)
	require.Equal(t, 5, got.Quantity)
	require.Equal(t, 1200.00, got.Price)
}

func TestGetMissing(t *testing.T) {
	s := NewItemStore(initTestDB(t))

	_, err := s.Get(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	s := NewItemStore(initTestDB(t))
	ctx := context.Background()

	item := models.Item{Name: "Mouse", Quantity: 15, Price: 85.99}
	require.NoError(t, s.Create(ctx, &item))

	updated, err := s.Update(ctx, item.ID, "Trackball", "vertical", 3, 49.99)
	require.NoError(t, err)
	require.Equal(t, item.ID, updated.ID)
	require.WithinDuration(t, item.CreatedAt, updated.CreatedAt, time.Second)

	got, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, "Trackball", got.Name)
	require.Equal(t, "vertical", got.Description)
	require.Equal(t, 3, got.Quantity)
	require.Equal(t, 49.99, got.Price)
	require.WithinDuration(t, item.CreatedAt, got.CreatedAt, time.Second)
}

func TestUpdateMissing(t *testing.T) {
	s := NewItemStore(initTestDB(t))

	_, err := s.Update(context.Background(), 999, "x", "", 1, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := NewItemStore(initTestDB(t))
	ctx := context.Background()

	item := models.Item{Name: "Webcam", Quantity: 20, Price: 59.90}
	require.NoError(t, s.Create(ctx, &item))

	require.NoError(t, s.Delete(ctx, item.ID))

	_, err := s.Get(ctx, item.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	s := NewItemStore(initTestDB(t))

	err := s.Delete(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := NewItemStore(initTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	oldest := models.Item{Name: "oldest", Quantity: 1, Price: 1, CreatedAt: base}
	middle := models.Item{Name: "middle", Quantity: 1, Price: 1, CreatedAt: base.Add(time.Hour)}
	newest := models.Item{Name: "newest", Quantity: 1, Price: 1, CreatedAt: base.Add(2 * time.Hour)}

	require.NoError(t, s.Create(ctx, &middle))
	require.NoError(t, s.Create(ctx, &newest))
	require.NoError(t, s.Create(ctx, &oldest))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "newest", items[0].Name)
	require.Equal(t, "middle", items[1].Name)
	require.Equal(t, "oldest", items[2].Name)
}

func TestListTiesBreakByInsertionOrder(t *testing.T) {
	s := NewItemStore(initTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	first := models.Item{Name: "first", Quantity: 1, Price: 1, CreatedAt: at}
	second := models.Item{Name: "second", Quantity: 1, Price: 1, CreatedAt: at}

	require.NoError(t, s.Create(ctx, &first))
	require.NoError(t, s.Create(ctx, &second))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "second", items[0].Name)
	require.Equal(t, "first", items[1].Name)
}
