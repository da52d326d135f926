package controller

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	admissionDTO "vedaschool_backend/internals/features/school/admissions/dto"
	admissionModel "vedaschool_backend/internals/features/school/admissions/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type ApplicationController struct {
	DB        *gorm.DB
	UploadDir string
}

// GET /admissions/applications
func (h *ApplicationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&admissionModel.ApplicationModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !admissionModel.ApplicationStatus(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("application_status = ?", s)
	}
	if cls := strings.TrimSpace(c.Query("class")); cls != "" {
		q = q.Where("application_class_applied = ?", cls)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count applications")
	}

	var rows []admissionModel.ApplicationModel
	if err := q.Order("application_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list applications")
	}
	return helper.JsonList(c, "Admission applications", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /admissions/applications/:id
func (h *ApplicationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row admissionModel.ApplicationModel
	if err := h.DB.First(&row, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Application detail", row)
}

// POST /admissions/applications
func (h *ApplicationController) Create(c *fiber.Ctx) error {
	var req admissionDTO.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create application")
	}
	return helper.JsonCreated(c, "Application created", row)
}

// PUT /admissions/applications/:id
func (h *ApplicationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req admissionDTO.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row admissionModel.ApplicationModel
	if err := h.DB.First(&row, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update application")
	}
	return helper.JsonOK(c, "Application updated", row)
}

// DELETE /admissions/applications/:id
func (h *ApplicationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&admissionModel.ApplicationModel{}, "application_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete application")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Application not found")
	}
	return helper.JsonDeleted(c, "Application deleted")
}

// POST /admissions/applications/:id/documents
// Multipart form: "type" (document label) and "file". The file lands
// under <upload_dir>/<application_id>/ and its entry is appended to the
// application's document list.
func (h *ApplicationController) UploadDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	docType := strings.TrimSpace(c.FormValue("type"))
	if docType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Document type is required")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Document file is required")
	}

	var row admissionModel.ApplicationModel
	if err := h.DB.First(&row, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	dir := filepath.Join(h.UploadDir, id.String())
	stored, err := helper.SaveUpload(c, fh, dir)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store document")
	}

	var docs []admissionModel.ApplicationDocument
	if len(row.ApplicationDocuments) > 0 {
		if err := json.Unmarshal(row.ApplicationDocuments, &docs); err != nil {
			docs = nil
		}
	}
	docs = append(docs, admissionModel.ApplicationDocument{
		Name: helper.SanitizeFilename(fh.Filename),
		Type: docType,
		Path: stored,
	})
	raw, err := json.Marshal(docs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode document list")
	}
	row.ApplicationDocuments = raw

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update application")
	}
	return helper.JsonCreated(c, "Document uploaded", row)
}
