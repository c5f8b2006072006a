package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"
	"sgac_app_go/validation"

	"github.com/labstack/echo/v4"
)

// MsgNoFile is reported when the evidence upload carries no file part
const MsgNoFile = "No file was submitted."

func publicationFromPath(c echo.Context) (*models.Publication, error) {
	return lookupOne[models.Publication](c, services.PublicationsQuery(db.DB), services.PublicationLookup)
}

// ListPublicationsHandler handles GET /publications/
func ListPublicationsHandler(c echo.Context) error {
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}
	publications, info, err := services.ListPublications(db.DB, p)
	if err != nil {
		return err
	}

	out := make([]dto.PublicationResponse, 0, len(publications))
	for i := range publications {
		out = append(out, dto.NewPublicationResponse(&publications[i]))
	}
	return respondList(c, out, info, p)
}

// CreatePublicationHandler handles POST /publications/
func CreatePublicationHandler(c echo.Context) error {
	var req dto.PublicationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	publication, err := services.CreatePublication(db.DB, &req)
	if err != nil {
		return err
	}

	resp := dto.NewPublicationResponse(publication)
	recordChange(c, models.AuditActionCreate, resourcePublication, publication.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetPublicationHandler handles GET /publications/:publicationId
func GetPublicationHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewPublicationResponse(publication))
}

// UpdatePublicationHandler handles PUT and PATCH /publications/:publicationId
func UpdatePublicationHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}

	var req dto.PublicationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewPublicationResponse(publication)
	if err := services.UpdatePublication(db.DB, publication, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewPublicationResponse(publication)
	recordChange(c, models.AuditActionUpdate, resourcePublication, publication.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeletePublicationHandler handles DELETE /publications/:publicationId along with its evidence file
func DeletePublicationHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewPublicationResponse(publication)
	if err := services.DeletePublicationWithEvidence(c.Request().Context(), db.DB, publication); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourcePublication, publication.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}

// UploadEvidenceHandler handles PUT /publications/:publicationId/evidence (multipart field "file")
func UploadEvidenceHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			errs := validation.Errors{}
			errs.Add("file", MsgNoFile)
			return errs
		}
		return err
	}

	old := dto.NewPublicationResponse(publication)
	maxBytes := getConfig(c).MaxUploadMB * 1024 * 1024
	if err := services.AttachEvidence(c.Request().Context(), db.DB, publication, fileHeader, maxBytes); err != nil {
		return err
	}

	resp := dto.NewPublicationResponse(publication)
	recordChange(c, models.AuditActionUpdate, resourcePublication, publication.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DownloadEvidenceHandler handles GET /publications/:publicationId/evidence
func DownloadEvidenceHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}

	reader, contentType, err := services.OpenEvidence(c.Request().Context(), publication)
	if err != nil {
		return err
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%q", publication.EvidenceName))
	return c.Stream(http.StatusOK, contentType, reader)
}

// DeleteEvidenceHandler handles DELETE /publications/:publicationId/evidence
func DeleteEvidenceHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewPublicationResponse(publication)
	if err := services.RemoveEvidence(c.Request().Context(), db.DB, publication); err != nil {
		return err
	}

	recordChange(c, models.AuditActionUpdate, resourcePublication, publication.ID, old, dto.NewPublicationResponse(publication))
	return c.NoContent(http.StatusNoContent)
}
