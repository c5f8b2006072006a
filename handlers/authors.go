package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

// authorFromPath resolves the publication and then the authorship addressed by
// both :publicationId and :professorId
func authorFromPath(c echo.Context) (*models.ProfessorPublication, error) {
	publication, err := publicationFromPath(c)
	if err != nil {
		return nil, err
	}
	return lookupOne[models.ProfessorPublication](c, services.AuthorsQuery(db.DB, publication.ID), services.AuthorLookup, "Professor")
}

// ListAuthorsHandler handles GET /publications/:publicationId/authors
func ListAuthorsHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}

	authors, info, err := services.ListAuthors(db.DB, publication.ID, p)
	if err != nil {
		return err
	}

	out := make([]dto.AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, dto.NewAuthorResponse(&authors[i]))
	}
	return respondList(c, out, info, p)
}

// CreateAuthorHandler handles POST /publications/:publicationId/authors
func CreateAuthorHandler(c echo.Context) error {
	publication, err := publicationFromPath(c)
	if err != nil {
		return err
	}

	var req dto.AuthorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	author, err := services.CreateAuthor(db.DB, publication, &req)
	if err != nil {
		return err
	}

	resp := dto.NewAuthorResponse(author)
	recordChange(c, models.AuditActionCreate, resourceAuthor, author.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetAuthorHandler handles GET /publications/:publicationId/authors/:professorId
func GetAuthorHandler(c echo.Context) error {
	author, err := authorFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewAuthorResponse(author))
}

// UpdateAuthorHandler handles PUT and PATCH on an authorship
func UpdateAuthorHandler(c echo.Context) error {
	author, err := authorFromPath(c)
	if err != nil {
		return err
	}

	var req dto.AuthorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewAuthorResponse(author)
	if err := services.UpdateAuthor(db.DB, author, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewAuthorResponse(author)
	recordChange(c, models.AuditActionUpdate, resourceAuthor, author.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteAuthorHandler handles DELETE on an authorship
func DeleteAuthorHandler(c echo.Context) error {
	author, err := authorFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewAuthorResponse(author)
	if err := services.DeleteAuthor(db.DB, author); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceAuthor, author.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
