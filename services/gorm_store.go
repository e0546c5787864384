package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"accreditation-api/models"
)

// GormDocumentStore is the production DocumentStore backed by the
// documents table.
type GormDocumentStore struct {
	db *gorm.DB
}

func NewGormDocumentStore(db *gorm.DB) *GormDocumentStore {
	return &GormDocumentStore{db: db}
}

func (s *GormDocumentStore) Create(doc *models.Document) error {
	if err := s.db.Create(doc).Error; err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *GormDocumentStore) List() ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Order("document_id DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *GormDocumentStore) GetByID(id int) (*models.Document, error) {
	var doc models.Document
	if err := s.db.Where("document_id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: document %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get document %d: %w", id, err)
	}
	return &doc, nil
}

func (s *GormDocumentStore) UpdateStatus(id int, status string) error {
	result := s.db.Model(&models.Document{}).
		Where("document_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update document %d status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	return nil
}

func (s *GormDocumentStore) Delete(id int) error {
	result := s.db.Where("document_id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return fmt.Errorf("delete document %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	return nil
}

// GormActivityStore is the production ActivityStore backed by the
// activities table.
type GormActivityStore struct {
	db *gorm.DB
}

func NewGormActivityStore(db *gorm.DB) *GormActivityStore {
	return &GormActivityStore{db: db}
}

func (s *GormActivityStore) Append(entry *models.Activity) error {
	if err := s.db.Create(entry).Error; err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (s *GormActivityStore) List() ([]models.Activity, error) {
	var entries []models.Activity
	if err := s.db.Order("activity_id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return entries, nil
}
