package repository

import (
	"context"
	"errors"

	"github.com/earlbread/multi-user-blog/internal/models"

	"gorm.io/gorm"
)

// EntryRepository defines the interface for blog entry data operations
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	GetByID(ctx context.Context, id uint) (*models.Entry, error)
	ListRecent(ctx context.Context) ([]*models.Entry, error)
}

// entryRepository implements EntryRepository
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *models.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id uint) (*models.Entry, error) {
	var entry models.Entry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListRecent returns all entries ordered by creation time descending, with id
// as a tiebreaker so same-timestamp inserts keep insertion order.
func (r *entryRepository) ListRecent(ctx context.Context) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}
