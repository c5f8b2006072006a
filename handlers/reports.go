package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"sgac_app_go/db"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

func sendWorkbook(c echo.Context, buf *bytes.Buffer, name string) error {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

// CareerReportHandler handles GET /careers/:careerId/report
func CareerReportHandler(c echo.Context) error {
	career, err := careerFromPath(c)
	if err != nil {
		return err
	}

	buf, err := services.CareerReport(db.DB, career)
	if err != nil {
		return err
	}
	return sendWorkbook(c, buf, fmt.Sprintf("career_%d", career.ID))
}

// ProfessorsReportHandler handles GET /professors/report
func ProfessorsReportHandler(c echo.Context) error {
	buf, err := services.ProfessorsReport(db.DB)
	if err != nil {
		return err
	}
	return sendWorkbook(c, buf, "professors")
}
