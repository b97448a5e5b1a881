package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"app-submission-api/internal/dto"
	"app-submission-api/internal/response"
)

func TestChecklistHandler_UploadFile(t *testing.T) {
	itemID := uuid.New()

	multipartBody := func(field, fileName, content string) (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		part, _ := writer.CreateFormFile(field, fileName)
		part.Write([]byte(content))
		writer.Close()
		return buf, writer.FormDataContentType()
	}

	noFileBody := func() (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		writer.WriteField("note", "no file here")
		writer.Close()
		return buf, writer.FormDataContentType()
	}

	tests := []struct {
		name           string
		path           string
		makeBody       func() (*bytes.Buffer, string)
		mockService    func(*MockChecklistService)
		expectedStatus int
	}{
		{
			name: "uploads the file",
			path: "/api/checklist/" + itemID.String() + "/upload",
			mockService: func(m *MockChecklistService) {
				m.UploadFileFunc = func(ctx context.Context, id uuid.UUID, originalName, contentType string, size int64, content io.Reader) (*dto.ChecklistItemResponse, error) {
					if originalName != "screenshot.png" {
						t.Errorf("expected original name screenshot.png, got %q", originalName)
					}
					data, _ := io.ReadAll(content)
					if string(data) != "png-bytes" {
						t.Errorf("unexpected file content %q", data)
					}
					return &dto.ChecklistItemResponse{ID: id}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects a request without a file field",
			path:           "/api/checklist/" + itemID.String() + "/upload",
			makeBody:       noFileBody,
			mockService:    func(m *MockChecklistService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "maps an unconfigured storage to 500",
			path: "/api/checklist/" + itemID.String() + "/upload",
			mockService: func(m *MockChecklistService) {
				m.UploadFileFunc = func(ctx context.Context, id uuid.UUID, originalName, contentType string, size int64, content io.Reader) (*dto.ChecklistItemResponse, error) {
					return nil, response.NewAppError(response.ErrCodeInternal, "File storage is not configured", "")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockChecklistService{}
			tt.mockService(mockService)
			handler := NewChecklistHandler(mockService)

			router := setupTestRouter()
			router.POST("/api/checklist/:itemId/upload", handler.UploadFile)

			makeBody := tt.makeBody
			if makeBody == nil {
				makeBody = func() (*bytes.Buffer, string) {
					return multipartBody("file", "screenshot.png", "png-bytes")
				}
			}
			body, contentType := makeBody()

			req := httptest.NewRequest(http.MethodPost, tt.path, body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("UploadFile() status = %v, want %v, body: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestChecklistHandler_DeleteFile(t *testing.T) {
	itemID := uuid.New()

	var gotFileName string
	mockService := &MockChecklistService{
		DeleteFileFunc: func(ctx context.Context, id uuid.UUID, fileName string) error {
			gotFileName = fileName
			return nil
		},
	}
	handler := NewChecklistHandler(mockService)

	router := setupTestRouter()
	router.DELETE("/api/checklist/:itemId/files/:fileName", handler.DeleteFile)

	req := httptest.NewRequest(http.MethodDelete, "/api/checklist/"+itemID.String()+"/files/abc_123.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("DeleteFile() status = %v, want %v", w.Code, http.StatusOK)
	}
	if gotFileName != "abc_123.png" {
		t.Errorf("unexpected file name %q", gotFileName)
	}
}

func TestChecklistHandler_GetItems(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"lists all items", "/api/checklist", http.StatusOK},
		{"filters by project", "/api/checklist?project_id=" + projectID.String(), http.StatusOK},
		{"rejects a malformed project filter", "/api/checklist?project_id=nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChecklistHandler(&MockChecklistService{})

			router := setupTestRouter()
			router.GET("/api/checklist", handler.GetItems)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("GetItems() status = %v, want %v, body: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}
