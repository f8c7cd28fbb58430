package racers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skiracer-backend/internal/bootstrap"
	"skiracer-backend/internal/shared/config"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:             "0",
		CORSAllowOrigin:  []string{"http://localhost:5173"},
		LocalStoreDir:    t.TempDir(),
		ObjectStoreType:  "local",
		AnalyzerProvider: "off",
		Env:              "dev",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postJSON(t *testing.T, router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createRacer(t *testing.T, router *gin.Engine) string {
	t.Helper()
	payload := `{
		"racer_name": "Mika Lindgren",
		"height": 178,
		"weight": 74.5,
		"ski_types": "GS 183cm",
		"binding_measurements": "DIN 11",
		"personal_records": "GS 1:04.2",
		"racing_goals": "Nationals"
	}`
	resp := postJSON(t, router, "/api/racers", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create racer: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected racer id")
	}
	return created.ID
}

func TestRacerCRUD(t *testing.T) {
	router := buildTestRouter(t)
	racerID := createRacer(t, router)

	// List.
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, httptest.NewRequest(http.MethodGet, "/api/racers", nil))
	if respList.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", respList.Code)
	}
	var listed []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != racerID {
		t.Fatalf("expected the created racer in the list, got %+v", listed)
	}

	// Partial update.
	reqUpdate := httptest.NewRequest(http.MethodPut, "/api/racers/"+racerID, strings.NewReader(`{"height": 180}`))
	reqUpdate.Header.Set("Content-Type", "application/json")
	respUpdate := httptest.NewRecorder()
	router.ServeHTTP(respUpdate, reqUpdate)
	if respUpdate.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", respUpdate.Code, respUpdate.Body.String())
	}
	var updated struct {
		Height    float64 `json:"height"`
		RacerName string  `json:"racer_name"`
	}
	if err := json.NewDecoder(respUpdate.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.Height != 180 || updated.RacerName != "Mika Lindgren" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	// Delete then 404.
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, httptest.NewRequest(http.MethodDelete, "/api/racers/"+racerID, nil))
	if respDel.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", respDel.Code)
	}
	respGone := httptest.NewRecorder()
	router.ServeHTTP(respGone, httptest.NewRequest(http.MethodGet, "/api/racers/"+racerID, nil))
	if respGone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", respGone.Code)
	}
}

func TestCreateRacerRejectsInvalidHeight(t *testing.T) {
	router := buildTestRouter(t)

	payload := `{
		"racer_name": "Mika Lindgren",
		"height": -2,
		"weight": 74.5,
		"ski_types": "GS 183cm",
		"binding_measurements": "DIN 11",
		"personal_records": "GS 1:04.2",
		"racing_goals": "Nationals"
	}`
	resp := postJSON(t, router, "/api/racers", payload)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Height must be greater than 0. Received: -2") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestDeleteRacerCascadesToEventsAndDocuments(t *testing.T) {
	router := buildTestRouter(t)
	racerID := createRacer(t, router)

	// Attach an event.
	respEvent := postJSON(t, router, "/api/racers/"+racerID+"/events",
		`{"event_name": "City GS", "event_date": "2026-12-05", "location": "Levi"}`)
	if respEvent.Code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d: %s", respEvent.Code, respEvent.Body.String())
	}
	var event struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respEvent.Body).Decode(&event); err != nil {
		t.Fatalf("decode event: %v", err)
	}

	// Attach a document.
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="run.mp4"`)
	header.Set("Content-Type", "video/mp4")
	fw, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("bytes")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	reqDoc := httptest.NewRequest(http.MethodPost, "/api/racers/"+racerID+"/documents", body)
	reqDoc.Header.Set("Content-Type", writer.FormDataContentType())
	respDoc := httptest.NewRecorder()
	router.ServeHTTP(respDoc, reqDoc)
	if respDoc.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", respDoc.Code, respDoc.Body.String())
	}
	var doc struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respDoc.Body).Decode(&doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}

	// Delete the racer; children must go with it.
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, httptest.NewRequest(http.MethodDelete, "/api/racers/"+racerID, nil))
	if respDel.Code != http.StatusOK {
		t.Fatalf("delete racer: expected 200, got %d", respDel.Code)
	}

	respEventGone := httptest.NewRecorder()
	router.ServeHTTP(respEventGone, httptest.NewRequest(http.MethodGet, "/api/events/"+event.ID, nil))
	if respEventGone.Code != http.StatusNotFound {
		t.Fatalf("expected event to be cascade-deleted, got %d", respEventGone.Code)
	}

	respDocGone := httptest.NewRecorder()
	router.ServeHTTP(respDocGone, httptest.NewRequest(http.MethodGet, "/api/documents/"+doc.ID, nil))
	if respDocGone.Code != http.StatusNotFound {
		t.Fatalf("expected document to be cascade-deleted, got %d", respDocGone.Code)
	}
}
