package models

import (
	"time"
)

// Document statuses. Any status may transition to any other status.
const (
	StatusPending   = "pending"
	StatusReviewing = "reviewing"
	StatusApproved  = "approved"
)

type Document struct {
	DocumentID  int       `gorm:"primaryKey;column:document_id" json:"id"`
	FileName    string    `gorm:"column:file_name" json:"fileName"`
	FileType    string    `gorm:"column:file_type" json:"fileType"`
	Category    string    `gorm:"column:category" json:"category"`
	Uploader    string    `gorm:"column:uploader" json:"uploader"`
	UploadDate  time.Time `gorm:"column:upload_date" json:"uploadDate"`
	Status      string    `gorm:"column:status;default:pending" json:"status"`
	StoragePath string    `gorm:"column:storage_path" json:"-"`
}

// Category represents one of the fixed accreditation categories
// (the self-evaluation form plus the eleven standards).
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories is the closed set of recognized document categories.
var Categories = []Category{
	{Value: "fed", Label: "Formulir Evaluasi Diri (FED)"},
	{Value: "std1", Label: "Standar 1: Kompetensi Lulusan"},
	{Value: "std2", Label: "Standar 2: Proses Pembelajaran"},
	{Value: "std3", Label: "Standar 3: Penilaian Pembelajaran"},
	{Value: "std4", Label: "Standar 4: Pengelolaan"},
	{Value: "std5", Label: "Standar 5: Isi"},
	{Value: "std6", Label: "Standar 6: Dosen dan Tenaga Kependidikan"},
	{Value: "std7", Label: "Standar 7: Sarana dan Prasarana"},
	{Value: "std8", Label: "Standar 8: Biaya"},
	{Value: "std9", Label: "Standar 9: Penelitian"},
	{Value: "std10", Label: "Standar 10: Pengabdian pada Masyarakat"},
	{Value: "std11", Label: "Standar 11: Penjaminan Mutu"},
}

// TableName overrides
func (Document) TableName() string {
	return "documents"
}
