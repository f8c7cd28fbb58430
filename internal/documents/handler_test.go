package documents_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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

func uploadFile(t *testing.T, router *gin.Engine, racerID, filename, mediaType, content string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", mediaType)
	fileWriter, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/racers/"+racerID+"/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentLifecycle(t *testing.T) {
	router := buildTestRouter(t)

	resp := uploadFile(t, router, "racer-1", "run.mp4", "video/mp4", "fake video bytes")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID       string  `json:"id"`
		RacerID  string  `json:"racer_id"`
		Status   string  `json:"status"`
		Analysis *string `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected document id")
	}
	if created.Status != "complete" {
		t.Fatalf("expected complete status, got %s", created.Status)
	}
	if created.Analysis == nil || !strings.HasPrefix(*created.Analysis, "Analysis unavailable:") {
		t.Fatalf("expected degraded analysis without a configured analyzer, got %v", created.Analysis)
	}

	// List for the racer.
	reqList := httptest.NewRequest(http.MethodGet, "/api/racers/racer-1/documents", nil)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", respList.Code)
	}
	var listed []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the uploaded document in the list, got %+v", listed)
	}

	// Fetch by id.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/documents/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", respGet.Code)
	}

	// Delete.
	reqDel := httptest.NewRequest(http.MethodDelete, "/api/documents/"+created.ID, nil)
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", respDel.Code)
	}
	var deleted struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(respDel.Body).Decode(&deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	want := fmt.Sprintf("Document %s deleted successfully", created.ID)
	if deleted.Message != want {
		t.Fatalf("expected %q, got %q", want, deleted.Message)
	}

	// Gone afterwards.
	respGone := httptest.NewRecorder()
	router.ServeHTTP(respGone, httptest.NewRequest(http.MethodGet, "/api/documents/"+created.ID, nil))
	if respGone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", respGone.Code)
	}
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	router := buildTestRouter(t)

	resp := uploadFile(t, router, "racer-1", "results.pdf", "application/pdf", "%PDF-1.4")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", errResp.Error.Code)
	}
	if !strings.Contains(errResp.Error.Message, "not allowed") {
		t.Fatalf("unexpected message: %s", errResp.Error.Message)
	}
}

func TestUploadURLUnsupportedOnLocalStore(t *testing.T) {
	router := buildTestRouter(t)

	payload := `{"filename":"run.mp4","media_type":"video/mp4","size_bytes":1024}`
	req := httptest.NewRequest(http.MethodPost, "/api/racers/racer-1/documents/upload-url", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("local store cannot presign, expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "storage_error" {
		t.Fatalf("expected storage_error, got %s", errResp.Error.Code)
	}
}

func TestAnalyzeUnknownDocument(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/racers/racer-1/documents/nope/analyze", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
