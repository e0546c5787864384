package services

import (
	"reflect"
	"testing"

	"accreditation-api/models"
)

func sampleDocs() []models.Document {
	return []models.Document{
		{DocumentID: 1, FileName: "Laporan Akhir.pdf", Uploader: "Ana", Category: "std1", Status: models.StatusPending},
		{DocumentID: 2, FileName: "borang.docx", Uploader: "Budi Report", Category: "std2", Status: models.StatusReviewing},
		{DocumentID: 3, FileName: "report-2024.xlsx", Uploader: "Citra", Category: "std1", Status: models.StatusApproved},
		{DocumentID: 4, FileName: "fed-final.pdf", Uploader: "Ana", Category: "fed", Status: models.StatusApproved},
	}
}

func ids(docs []models.Document) []int {
	out := make([]int, len(docs))
	for i, d := range docs {
		out[i] = d.DocumentID
	}
	return out
}

func TestFilterDocuments(t *testing.T) {
	docs := sampleDocs()

	tests := []struct {
		name  string
		query DocumentQuery
		want  []int
	}{
		{"no filters", DocumentQuery{}, []int{1, 2, 3, 4}},
		{"all sentinels", DocumentQuery{Category: "all", Status: "all"}, []int{1, 2, 3, 4}},
		{"free text on filename", DocumentQuery{FreeText: "report"}, []int{2, 3}},
		{"free text case-insensitive", DocumentQuery{FreeText: "LAPORAN"}, []int{1}},
		{"free text on uploader", DocumentQuery{FreeText: "ana"}, []int{1, 4}},
		{"category", DocumentQuery{Category: "std1"}, []int{1, 3}},
		{"status", DocumentQuery{Status: models.StatusApproved}, []int{3, 4}},
		{"combined AND", DocumentQuery{FreeText: "ana", Status: models.StatusApproved}, []int{4}},
		{"no match", DocumentQuery{FreeText: "missing"}, []int{}},
	}

	for _, tt := range tests {
		got := ids(FilterDocuments(docs, tt.query))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFilterDeterministic(t *testing.T) {
	docs := sampleDocs()
	first := FilterDocuments(docs, DocumentQuery{Category: "all"})
	second := FilterDocuments(docs, DocumentQuery{Category: "all"})
	if !reflect.DeepEqual(first, second) {
		t.Error("same query over same snapshot produced different results")
	}
	if !reflect.DeepEqual(first, docs) {
		t.Error("inactive filters changed document content or order")
	}
}

func TestAggregateDocuments(t *testing.T) {
	stats := AggregateDocuments(sampleDocs())
	want := DocumentStats{Total: 4, Pending: 1, Reviewing: 1, Approved: 2}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	if stats.Pending+stats.Reviewing+stats.Approved != stats.Total {
		t.Errorf("counts do not add up to total: %+v", stats)
	}

	if empty := AggregateDocuments(nil); empty != (DocumentStats{}) {
		t.Errorf("empty list stats = %+v", empty)
	}
}
