package services

import (
	"bytes"
	"fmt"
	"strings"

	"sgac_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// XLSXContentType is the MIME type of generated reports
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeSheet fills sheet with a bold header row followed by rows
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheet, "A", lastCol, 22)
	return nil
}

func workbookBuffer(f *excelize.File) (*bytes.Buffer, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// CareerReport builds the accreditation workbook of a career: summary, disciplines and subjects
func CareerReport(db *gorm.DB, career *models.Career) (*bytes.Buffer, error) {
	var disciplines []models.Discipline
	if err := db.Where("career_id = ?", career.ID).Order("id ASC").Find(&disciplines).Error; err != nil {
		return nil, err
	}

	disciplineIDs := make([]uint, 0, len(disciplines))
	disciplineNames := make(map[uint]string, len(disciplines))
	for _, d := range disciplines {
		disciplineIDs = append(disciplineIDs, d.ID)
		disciplineNames[d.ID] = d.Name
	}

	var subjects []models.Subject
	if len(disciplineIDs) > 0 {
		if err := db.Where("discipline_id IN ?", disciplineIDs).Order("year ASC, term ASC, id ASC").Find(&subjects).Error; err != nil {
			return nil, err
		}
	}

	subjectIDs := make([]uint, 0, len(subjects))
	for _, s := range subjects {
		subjectIDs = append(subjectIDs, s.ID)
	}
	professors, err := SubjectProfessors(db, subjectIDs)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Career"
	f.SetSheetName("Sheet1", summary)
	err = writeSheet(f, summary,
		[]string{"Name", "Modality", "Site", "External evaluation year", "Evaluated course", "External evaluation number", "Disciplines", "Subjects"},
		[][]interface{}{{
			career.Name, career.Modality, career.Site, career.ExternalEvaluationYear,
			career.EvaluatedCourse, career.ExternalEvaluationNumber, len(disciplines), len(subjects),
		}})
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(disciplines))
	for _, d := range disciplines {
		rows = append(rows, []interface{}{d.Code, d.Name})
	}
	f.NewSheet("Disciplines")
	if err := writeSheet(f, "Disciplines", []string{"Code", "Name"}, rows); err != nil {
		return nil, err
	}

	rows = make([][]interface{}, 0, len(subjects))
	for _, s := range subjects {
		names := make([]string, 0, len(professors[s.ID]))
		for _, p := range professors[s.ID] {
			names = append(names, p.FullName())
		}
		rows = append(rows, []interface{}{
			disciplineNames[s.DisciplineID], s.Code, s.Name, s.Year, s.Term, s.Modality, s.Curriculum, strings.Join(names, "; "),
		})
	}
	f.NewSheet("Subjects")
	err = writeSheet(f, "Subjects",
		[]string{"Discipline", "Code", "Name", "Year", "Term", "Modality", "Curriculum", "Professors"}, rows)
	if err != nil {
		return nil, err
	}

	return workbookBuffer(f)
}

// ProfessorsReport builds the staff workbook: professors, publications, awards and events
func ProfessorsReport(db *gorm.DB) (*bytes.Buffer, error) {
	var professors []models.Professor
	if err := db.Order("id ASC").Find(&professors).Error; err != nil {
		return nil, err
	}

	var authorships []models.ProfessorPublication
	if err := db.Preload("Professor").Preload("Publication").Order("publication_id ASC, id ASC").Find(&authorships).Error; err != nil {
		return nil, err
	}

	var awards []models.Award
	if err := db.Preload("Professor").Order("year DESC, id ASC").Find(&awards).Error; err != nil {
		return nil, err
	}

	var eventLinks []models.ProfessorEvent
	if err := db.Preload("Professor").Preload("Event").Order("event_id ASC").Find(&eventLinks).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const staff = "Professors"
	f.SetSheetName("Sheet1", staff)
	rows := make([][]interface{}, 0, len(professors))
	for _, p := range professors {
		emails := make([]string, 0, len(p.Emails))
		for _, e := range p.Emails {
			emails = append(emails, e.Email)
		}
		specialty := ""
		if p.RelatedSpecialtyDoctor != nil && *p.RelatedSpecialtyDoctor {
			specialty = "yes"
		}
		rows = append(rows, []interface{}{
			p.FullName(), p.TeachingCategory, p.ScientificDegree, specialty,
			p.CareerYearsExperience, p.MonthsExperience, strings.Join(emails, "; "),
		})
	}
	err := writeSheet(f, staff,
		[]string{"Professor", "Teaching category", "Scientific degree", "Related specialty doctor", "Career years", "Months", "Emails"}, rows)
	if err != nil {
		return nil, err
	}

	rows = make([][]interface{}, 0, len(authorships))
	for _, a := range authorships {
		year, level := "", ""
		if a.Publication.Year != nil {
			year = fmt.Sprintf("%d", *a.Publication.Year)
		}
		if a.Publication.Level != nil {
			level = fmt.Sprintf("%d", *a.Publication.Level)
		}
		rows = append(rows, []interface{}{
			a.Professor.FullName(), a.Role, year, a.Publication.Title, a.Publication.Type,
			a.Publication.Publisher, a.Publication.IsbnIssn, a.Publication.JournalDatabase, level,
		})
	}
	f.NewSheet("Publications")
	err = writeSheet(f, "Publications",
		[]string{"Professor", "Role", "Year", "Title", "Type", "Publisher", "ISBN/ISSN", "Database", "Level"}, rows)
	if err != nil {
		return nil, err
	}

	rows = make([][]interface{}, 0, len(awards))
	for _, a := range awards {
		rows = append(rows, []interface{}{a.Professor.FullName(), a.Year, a.Classification, a.Description})
	}
	f.NewSheet("Awards")
	if err := writeSheet(f, "Awards", []string{"Professor", "Year", "Classification", "Description"}, rows); err != nil {
		return nil, err
	}

	rows = make([][]interface{}, 0, len(eventLinks))
	for _, l := range eventLinks {
		rows = append(rows, []interface{}{l.Professor.FullName(), l.Event.Year, l.Event.Classification, l.Event.ShortTitle, l.Event.Title})
	}
	f.NewSheet("Events")
	if err := writeSheet(f, "Events", []string{"Professor", "Year", "Classification", "Short title", "Title"}, rows); err != nil {
		return nil, err
	}

	return workbookBuffer(f)
}
