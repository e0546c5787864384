package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"accreditation-api/models"
	"accreditation-api/storage"
	"accreditation-api/utils"
)

// DocumentStore persists document metadata records. Implementations
// return ErrNotFound for unknown ids; tests substitute an in-memory
// fake.
type DocumentStore interface {
	Create(doc *models.Document) error
	List() ([]models.Document, error)
	GetByID(id int) (*models.Document, error)
	UpdateStatus(id int, status string) error
	Delete(id int) error
}

// ActivityStore appends and lists audit records. Entries are never
// mutated after Append.
type ActivityStore interface {
	Append(entry *models.Activity) error
	List() ([]models.Activity, error)
}

// DocumentService orchestrates the document lifecycle: upload, status
// review, download, and cascading delete, with an activity entry per
// mutating action.
type DocumentService struct {
	docs       DocumentStore
	activities ActivityStore
	blobs      storage.BlobStore

	// Notify, when set, is called after a successful status change.
	Notify func(doc models.Document)
}

func NewDocumentService(docs DocumentStore, activities ActivityStore, blobs storage.BlobStore) *DocumentService {
	return &DocumentService{docs: docs, activities: activities, blobs: blobs}
}

// UploadInput carries a client-submitted file plus its metadata.
type UploadInput struct {
	FileName string
	Content  io.Reader
	Size     int64
	Category string
	Uploader string
}

// Upload validates the input, stores the blob, creates the record with
// status pending, and appends an upload activity entry. The blob is
// written before the record so a failure can never leave a record with
// a dangling storage path.
func (s *DocumentService) Upload(input UploadInput) (*models.Document, error) {
	fileName := utils.SanitizeInput(input.FileName)
	uploader := utils.SanitizeInput(input.Uploader)

	if input.Content == nil || fileName == "" {
		return nil, validationError("no file provided")
	}
	if uploader == "" {
		return nil, validationError("uploader is required")
	}
	if !utils.IsValidCategory(input.Category) {
		return nil, validationError("unknown category %q", input.Category)
	}

	storagePath, err := s.blobs.Store(input.Content, input.Size, fileName)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	doc := &models.Document{
		FileName:    fileName,
		FileType:    utils.FileTypeFromName(fileName),
		Category:    input.Category,
		Uploader:    uploader,
		UploadDate:  time.Now(),
		Status:      models.StatusPending,
		StoragePath: storagePath,
	}

	if err := s.docs.Create(doc); err != nil {
		// The blob is already on disk; remove it so a failed create
		// leaves no orphan behind.
		if cleanupErr := s.blobs.Delete(storagePath); cleanupErr != nil && !errors.Is(cleanupErr, storage.ErrNotExist) {
			log.Printf("Warning: orphaned blob %s after failed create: %v", storagePath, cleanupErr)
		}
		return nil, fmt.Errorf("create document record: %w", err)
	}

	s.recordActivity(models.ActionUpload, doc.FileName, uploader)
	return doc, nil
}

// ChangeStatus applies a status transition. Admin only; any status may
// move to any other status. Re-applying the current status succeeds
// without logging a duplicate activity entry.
func (s *DocumentService) ChangeStatus(actor models.User, id int, newStatus string) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins may change document status", ErrForbidden)
	}
	if !utils.IsValidStatus(newStatus) {
		return validationError("unknown status %q", newStatus)
	}

	doc, err := s.docs.GetByID(id)
	if err != nil {
		return err
	}
	if doc.Status == newStatus {
		return nil
	}

	if err := s.docs.UpdateStatus(id, newStatus); err != nil {
		return err
	}

	s.recordActivity(models.ActionStatusChange, doc.FileName, actor.Name)

	if s.Notify != nil {
		updated := *doc
		updated.Status = newStatus
		s.Notify(updated)
	}
	return nil
}

// Download opens the blob for an existing document and logs the access.
// The caller owns the returned reader.
func (s *DocumentService) Download(actor models.User, id int) (*models.Document, io.ReadCloser, error) {
	doc, err := s.docs.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.blobs.Retrieve(doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: file missing for document %d", ErrNotFound, id)
		}
		return nil, nil, fmt.Errorf("retrieve blob: %w", err)
	}

	s.recordActivity(models.ActionDownload, doc.FileName, actor.Name)
	return doc, content, nil
}

// Delete removes the blob and the record as one logical operation.
// A blob that is already gone is a soft success (logged); any other
// blob failure aborts so the record never dangles silently.
func (s *DocumentService) Delete(actor models.User, id int) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins may delete documents", ErrForbidden)
	}

	doc, err := s.docs.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(doc.StoragePath); err != nil {
		if !errors.Is(err, storage.ErrNotExist) {
			return fmt.Errorf("delete blob: %w", err)
		}
		log.Printf("Warning: blob %s already absent while deleting document %d", doc.StoragePath, id)
	}

	if err := s.docs.Delete(id); err != nil {
		return err
	}

	s.recordActivity(models.ActionDelete, doc.FileName, actor.Name)
	return nil
}

// List returns the current document snapshot.
func (s *DocumentService) List() ([]models.Document, error) {
	return s.docs.List()
}

// Activities returns the audit log, most recent first.
func (s *DocumentService) Activities() ([]models.Activity, error) {
	return s.activities.List()
}

// recordActivity appends an audit entry. Logging failures must not
// fail the action that triggered them.
func (s *DocumentService) recordActivity(action, fileName, actor string) {
	entry := &models.Activity{
		Action:    action,
		FileName:  fileName,
		Actor:     actor,
		Timestamp: time.Now(),
	}
	if err := s.activities.Append(entry); err != nil {
		log.Printf("Warning: failed to record %s activity for %q: %v", action, fileName, err)
	}
}
