package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accreditation-api/middleware"
	"accreditation-api/models"
	"accreditation-api/services"
)

// UploadDocument handles multipart document upload. The uploader
// identity comes from the authenticated user, never from the form.
func UploadDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication context missing"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	content, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer content.Close()

	doc, err := documentService.Upload(services.UploadInput{
		FileName: file.Filename,
		Content:  content,
		Size:     file.Size,
		Category: c.PostForm("category"),
		Uploader: user.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": doc})
}

// GetDocuments lists documents, optionally narrowed by free-text
// search (q) and category/status filters.
func GetDocuments(c *gin.Context) {
	docs, err := documentService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	query := services.DocumentQuery{
		FreeText: c.Query("q"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	docs = services.FilterDocuments(docs, query)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": docs})
}

// DownloadDocument streams the stored file back under its original
// filename.
func DownloadDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication context missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid document id"})
		return
	}

	doc, content, err := documentService.Download(user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer content.Close()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", content, nil)
}

// UpdateDocumentStatus applies a review status transition. Admin only.
func UpdateDocumentStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication context missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid document id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := documentService.ChangeStatus(user, id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteDocument removes a document record together with its blob.
// Admin only.
func DeleteDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication context missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid document id"})
		return
	}

	if err := documentService.Delete(user, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCategories returns the fixed accreditation category catalog for
// the upload dialog.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.Categories})
}
