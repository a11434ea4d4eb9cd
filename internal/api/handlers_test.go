package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolioapi/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// errorEnvelope mirrors the error payload shape for assertions.
type errorEnvelope struct {
	Error struct {
		Message string  `json:"message"`
		Issues  []Issue `json:"issues"`
	} `json:"error"`
}

func issuePaths(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var envelope errorEnvelope
	decodeBody(t, rec, &envelope)
	paths := make([]string, 0, len(envelope.Error.Issues))
	for _, issue := range envelope.Error.Issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func bilingual(en, fr string) database.BilingualText {
	return database.BilingualText{En: en, Fr: fr}
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	router := gin.New()

	project := NewProjectHandler(db)
	experience := NewExperienceHandler(db)
	education := NewEducationHandler(db)
	hobby := NewHobbyHandler(db)
	contactInfo := NewContactInfoHandler(db)
	message := NewMessageHandler(db)

	router.POST("/projects", project.Create)
	router.GET("/projects", project.List)
	router.POST("/experiences", experience.Create)
	router.GET("/experiences", experience.List)
	router.POST("/education", education.Create)
	router.GET("/education", education.List)
	router.POST("/hobbies", hobby.Create)
	router.GET("/hobbies", hobby.List)
	router.POST("/contact-info", contactInfo.Create)
	router.GET("/contact-info", contactInfo.List)
	router.POST("/messages", message.Create)
	router.GET("/messages", message.List)

	cases := []struct {
		path    string
		payload map[string]any
	}{
		{"/projects", map[string]any{
			"title":       bilingual("Portfolio", "Portfolio"),
			"description": bilingual("This site", "Ce site"),
			"techStack":   []string{"go", "postgres"},
			"featured":    true,
			"order":       1,
		}},
		{"/experiences", map[string]any{
			"company":     bilingual("Acme", "Acme"),
			"role":        bilingual("Engineer", "Ingénieur"),
			"description": bilingual("Built things", "Construit des choses"),
			"startDate":   "2020-01-15T00:00:00Z",
			"isCurrent":   true,
		}},
		{"/education", map[string]any{
			"school":    bilingual("MIT", "MIT"),
			"degree":    bilingual("BSc", "Licence"),
			"startDate": "2014-09-01T00:00:00Z",
			"endDate":   "2018-06-01T00:00:00Z",
		}},
		{"/hobbies", map[string]any{
			"name":        bilingual("Climbing", "Escalade"),
			"description": bilingual("Indoors", "En salle"),
		}},
		{"/contact-info", map[string]any{
			"email":   "me@example.com",
			"phone":   "+1 555 0100",
			"website": "https://example.com",
			"socials": map[string]string{"github": "https://github.com/me"},
		}},
		{"/messages", map[string]any{
			"name":    "Jane",
			"email":   "jane@example.com",
			"subject": "Hello",
			"content": "Nice site",
		}},
	}

	for _, tc := range cases {
		rec := doJSON(t, router, http.MethodPost, tc.path, tc.payload)
		if rec.Code != http.StatusCreated {
			t.Fatalf("POST %s: got status %d, body %s", tc.path, rec.Code, rec.Body.String())
		}

		var created map[string]any
		decodeBody(t, rec, &created)
		if id, ok := created["id"].(float64); !ok || id == 0 {
			t.Errorf("POST %s: missing generated id in %v", tc.path, created)
		}
		if created["createdAt"] == nil {
			t.Errorf("POST %s: missing createdAt in %v", tc.path, created)
		}

		listRec := doJSON(t, router, http.MethodGet, tc.path, nil)
		if listRec.Code != http.StatusOK {
			t.Fatalf("GET %s: got status %d", tc.path, listRec.Code)
		}
		var listed []map[string]any
		decodeBody(t, listRec, &listed)
		if len(listed) != 1 {
			t.Errorf("GET %s: expected 1 record, got %d", tc.path, len(listed))
		}
	}
}

func TestProjectCreate_DefaultsTechStackToEmptyList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	router := gin.New()
	handler := NewProjectHandler(db)
	router.POST("/projects", handler.Create)

	rec := doJSON(t, router, http.MethodPost, "/projects", map[string]any{
		"title":       bilingual("A", "A"),
		"description": bilingual("B", "B"),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		TechStack []string `json:"techStack"`
	}
	decodeBody(t, rec, &created)
	if created.TechStack == nil || len(created.TechStack) != 0 {
		t.Errorf("expected empty tech stack, got %v", created.TechStack)
	}
}

func TestUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	router := gin.New()
	handler := NewHobbyHandler(db)
	router.POST("/hobbies", handler.Create)
	router.PUT("/hobbies/:id", handler.Update)

	rec := doJSON(t, router, http.MethodPost, "/hobbies", map[string]any{
		"name":        bilingual("Chess", "Échecs"),
		"description": bilingual("Blitz", "Blitz"),
		"order":       3,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d", rec.Code)
	}
	var created database.Hobby
	decodeBody(t, rec, &created)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/hobbies/%d", created.ID), map[string]any{
		"order": 7,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: got status %d, body %s", rec.Code, rec.Body.String())
	}
	var updated database.Hobby
	decodeBody(t, rec, &updated)

	if updated.Order != 7 {
		t.Errorf("order not applied: %d", updated.Order)
	}
	if updated.Name.En != "Chess" || updated.Description.Fr != "Blitz" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestDelete_UnknownIDReturnsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	router := gin.New()
	handler := NewMessageHandler(db)
	router.DELETE("/messages/:id", handler.Delete)

	rec := doJSON(t, router, http.MethodDelete, "/messages/42", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}
}
