package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campus-coffee-backend/internal/model"
)

// Store defines the persistence operations for points of sale. Audit
// timestamps are assigned here (via GORM) as part of each write, never by
// callers.
type Store interface {
	Create(ctx context.Context, pos model.Pos) (model.Pos, error)
	Update(ctx context.Context, pos model.Pos) (model.Pos, error)
	FindByID(ctx context.Context, id int64) (model.Pos, error)
	FindAll(ctx context.Context) ([]model.Pos, error)
	FindByCampus(ctx context.Context, campus model.Campus) ([]model.Pos, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Create inserts a new pos row. GORM assigns ID, CreatedAt and UpdatedAt from
// a single observed instant; a duplicate name surfaces as DuplicateNameError.
func (s *gormStore) Create(ctx context.Context, pos model.Pos) (model.Pos, error) {
	if err := s.db.WithContext(ctx).Create(&pos).Error; err != nil {
		if dup := classifyConstraintErr(err, pos.Name); dup != nil {
			return model.Pos{}, dup
		}
		return model.Pos{}, fmt.Errorf("store: failed to create pos %q: %w", pos.Name, err)
	}
	return pos, nil
}

// Update writes all fields of an existing pos row, refreshing UpdatedAt. The
// row must already exist; updating an absent ID fails with NotFoundError.
func (s *gormStore) Update(ctx context.Context, pos model.Pos) (model.Pos, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Pos
		if err := tx.First(&existing, pos.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.NotFoundError{ID: pos.ID}
			}
			return fmt.Errorf("store: failed to load pos %d: %w", pos.ID, err)
		}

		pos.CreatedAt = existing.CreatedAt
		if err := tx.Save(&pos).Error; err != nil {
			if dup := classifyConstraintErr(err, pos.Name); dup != nil {
				return dup
			}
			return fmt.Errorf("store: failed to update pos %d: %w", pos.ID, err)
		}
		return nil
	})
	if err != nil {
		return model.Pos{}, err
	}
	return pos, nil
}

// FindByID loads a single pos, failing with NotFoundError when absent.
func (s *gormStore) FindByID(ctx context.Context, id int64) (model.Pos, error) {
	var pos model.Pos
	if err := s.db.WithContext(ctx).First(&pos, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Pos{}, model.NotFoundError{ID: id}
		}
		return model.Pos{}, fmt.Errorf("store: failed to load pos %d: %w", id, err)
	}
	return pos, nil
}

// FindAll returns every pos ordered by ascending ID.
func (s *gormStore) FindAll(ctx context.Context) ([]model.Pos, error) {
	var all []model.Pos
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("store: failed to list pos: %w", err)
	}
	return all, nil
}

// FindByCampus returns the pos records on the given campus, ordered by
// ascending ID. No match yields an empty slice, not an error.
func (s *gormStore) FindByCampus(ctx context.Context, campus model.Campus) ([]model.Pos, error) {
	var matches []model.Pos
	if err := s.db.WithContext(ctx).Where("campus = ?", campus).Order("id ASC").Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("store: failed to list pos for campus %s: %w", campus, err)
	}
	return matches, nil
}
