package services

import (
	"strings"

	"accreditation-api/models"
)

// DocumentQuery is the filter spec applied over a document snapshot.
// Empty or "all" fields are inactive; active fields combine with AND.
type DocumentQuery struct {
	FreeText string
	Category string
	Status   string
}

// DocumentStats are the dashboard summary counts, recomputed from the
// full document list on every call.
type DocumentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewing int `json:"reviewing"`
	Approved  int `json:"approved"`
}

func filterActive(value string) bool {
	return value != "" && value != "all"
}

// FilterDocuments returns the documents matching the query, preserving
// the input order. Free text matches fileName or uploader
// case-insensitively.
func FilterDocuments(docs []models.Document, q DocumentQuery) []models.Document {
	matched := make([]models.Document, 0, len(docs))
	needle := strings.ToLower(strings.TrimSpace(q.FreeText))

	for _, doc := range docs {
		if needle != "" {
			name := strings.ToLower(doc.FileName)
			uploader := strings.ToLower(doc.Uploader)
			if !strings.Contains(name, needle) && !strings.Contains(uploader, needle) {
				continue
			}
		}
		if filterActive(q.Category) && doc.Category != q.Category {
			continue
		}
		if filterActive(q.Status) && doc.Status != q.Status {
			continue
		}
		matched = append(matched, doc)
	}

	return matched
}

// AggregateDocuments computes per-status counts over the full list.
func AggregateDocuments(docs []models.Document) DocumentStats {
	stats := DocumentStats{Total: len(docs)}
	for _, doc := range docs {
		switch doc.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusReviewing:
			stats.Reviewing++
		case models.StatusApproved:
			stats.Approved++
		}
	}
	return stats
}
