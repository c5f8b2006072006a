package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"sgac_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventProfessorLink(t *testing.T) {
	testDB := setupTestDB(t)
	e := setupServer(t, testConfig())

	ana := createProfessor(t, testDB, "Ana")
	luis := createProfessor(t, testDB, "Luis")

	rec := doJSON(e, http.MethodPost, "/events", fmt.Sprintf(
		`{"year": 2023, "title": "Congreso Nacional de Morfología", "shortTitle": "MORFO", "classification": "NACIONAL", "professorId": %d}`, ana.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	path := fmt.Sprintf("/events/%v", created["id"])
	assert.Equal(t, "Ana", created["professor"].(map[string]interface{})["name"])

	t.Run("ProfessorRequiredOnCreate", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/events", `{"year": 2023, "title": "T", "shortTitle": "S", "classification": "NACIONAL"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []interface{}{"This field is required."}, decode(t, rec)["professorId"])
		assert.Equal(t, int64(1), count(t, testDB, &models.Event{}))
	})

	t.Run("MoveToAnotherProfessor", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, fmt.Sprintf(`{"professorId": %d}`, luis.ID))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Luis", decode(t, rec)["professor"].(map[string]interface{})["name"])
		assert.Equal(t, int64(1), count(t, testDB, &models.ProfessorEvent{}))
	})

	t.Run("InvalidClassification", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, `{"classification": "GLOBAL"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec), "classification")
	})

	t.Run("ListEmbedsProfessor", func(t *testing.T) {
		items := decodeList(t, doJSON(e, http.MethodGet, "/events", ""))
		require.Len(t, items, 1)
		assert.Equal(t, "Luis", items[0]["professor"].(map[string]interface{})["name"])
	})

	t.Run("ProfessorDeletedLeavesEvent", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, doJSON(e, http.MethodDelete, fmt.Sprintf("/professors/%d", luis.ID), "").Code)
		rec := doJSON(e, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decode(t, rec)["professor"])
	})

	t.Run("Delete", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, doJSON(e, http.MethodDelete, path, "").Code)
		assertNotFound(t, doJSON(e, http.MethodGet, path, ""))
	})
}

func TestAwardCRUD(t *testing.T) {
	testDB := setupTestDB(t)
	e := setupServer(t, testConfig())

	ana := createProfessor(t, testDB, "Ana")
	luis := createProfessor(t, testDB, "Luis")

	rec := doJSON(e, http.MethodPost, "/awards", fmt.Sprintf(
		`{"professorId": %d, "year": 2021, "description": "Resultado científico destacado", "classification": "Premio del Rector"}`, ana.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	path := fmt.Sprintf("/awards/%v", created["id"])
	assert.Equal(t, "Ana", created["professor"].(map[string]interface{})["name"])

	t.Run("Reassign", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, fmt.Sprintf(`{"professorId": %d}`, luis.ID))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, float64(luis.ID), body["professor"].(map[string]interface{})["id"])
		assert.Equal(t, "Luis", body["professor"].(map[string]interface{})["name"])
	})

	t.Run("UnknownProfessor", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, `{"professorId": 999}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []interface{}{`Invalid pk "999" - object does not exist.`}, decode(t, rec)["professorId"])
	})

	t.Run("PutNeedsEveryField", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, path, `{"year": 2022}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Contains(t, body, "professorId")
		assert.Contains(t, body, "description")
	})

	t.Run("SanitizedDescription", func(t *testing.T) {
		rec := doJSON(e, http.MethodPatch, path, `{"description": "<script>alert(1)</script>Premio"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Premio", decode(t, rec)["description"])
	})

	t.Run("Delete", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, doJSON(e, http.MethodDelete, path, "").Code)
		assert.Equal(t, int64(0), count(t, testDB, &models.Award{}))
	})
}
