package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"accreditation-api/config"
	"accreditation-api/models"
)

var statusLabels = map[string]string{
	models.StatusPending:   "Belum Diperiksa",
	models.StatusReviewing: "Sedang Diperiksa",
	models.StatusApproved:  "Disetujui",
}

// MailNotifier returns a Notify hook that emails the uploader when a
// document's review status changes. Sends are best effort: failures
// are logged, never surfaced to the caller, and nothing is attempted
// when SMTP is unconfigured.
func MailNotifier(db *gorm.DB) func(models.Document) {
	return func(doc models.Document) {
		if !config.MailConfigured() {
			return
		}

		var uploader models.User
		err := db.Where("name = ? AND delete_at IS NULL", doc.Uploader).First(&uploader).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Warning: uploader lookup for %q failed: %v", doc.Uploader, err)
			}
			return
		}

		label := statusLabels[doc.Status]
		if label == "" {
			label = doc.Status
		}

		subject := fmt.Sprintf("Status dokumen %q: %s", doc.FileName, label)
		body := fmt.Sprintf(
			"<p>Halo %s,</p><p>Status dokumen <b>%s</b> (kategori %s) telah diubah menjadi <b>%s</b>.</p>",
			uploader.Name, doc.FileName, doc.Category, label,
		)

		if err := config.SendMail([]string{uploader.Email}, subject, body); err != nil {
			log.Printf("Warning: status notification mail to %s failed: %v", uploader.Email, err)
		}
	}
}
