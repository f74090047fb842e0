package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

const testMaxFileSize = 16 * 1024 * 1024

func uploadRequest(t *testing.T, filename, content, jobDescription string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newUploadApp(repo *memRepo, pipeline services.Pipeline) *fiber.App {
	app := fiber.New()
	handler := NewUploadHandler(repo, &stubStorage{}, &stubParser{text: "John Doe resume text"}, pipeline, testMaxFileSize)
	app.Post("/api/v1/upload-resume", handler.HandleUpload)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func TestHandleUploadSuccess(t *testing.T) {
	repo := newMemRepo()
	pipeline := &stubPipeline{
		repo: repo,
		processed: &models.ProcessedResume{
			ExtractedData:      &models.CandidateProfile{IsResume: true},
			InterviewQuestions: &models.QuestionSet{Questions: []models.InterviewQuestion{{Question: "Q"}}},
			JobMatchSummary:    &models.MatchAnalysis{MatchScore: 75, MatchLabel: "Moderate Match"},
		},
	}
	app := newUploadApp(repo, pipeline)

	resp, err := app.Test(uploadRequest(t, "cv.pdf", "%PDF-1.4", "Python developer"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["session_id"])

	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cv.pdf", metadata["filename"])
	assert.Equal(t, true, metadata["has_job_match"])
}

func TestHandleUploadMissingFile(t *testing.T) {
	app := newUploadApp(newMemRepo(), &stubPipeline{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-resume", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadRejectsNonPDF(t *testing.T) {
	app := newUploadApp(newMemRepo(), &stubPipeline{})

	resp, err := app.Test(uploadRequest(t, "cv.docx", "not a pdf", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "Only PDF files are allowed")
}

func TestHandleUploadPipelineFailure(t *testing.T) {
	repo := newMemRepo()
	pipeline := &stubPipeline{
		repo: repo,
		err:  &services.ExtractionError{Reason: "This is an invoice"},
	}
	app := newUploadApp(repo, pipeline)

	resp, err := app.Test(uploadRequest(t, "cv.pdf", "%PDF-1.4", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "extraction_failed", body["error_kind"])
	assert.Contains(t, body["error"], "This is an invoice")
}

func TestErrorKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"empty document", services.ErrEmptyDocument, "empty_document"},
		{"wrapped empty document", errors.Join(errors.New("upload"), services.ErrEmptyDocument), "empty_document"},
		{"transport", &services.TransportError{Status: 500}, "transport_error"},
		{"malformed", &services.MalformedResponseError{Raw: "x"}, "malformed_response"},
		{"extraction", &services.ExtractionError{Reason: "r"}, "extraction_failed"},
		{"validation", &services.ValidationError{Field: "f", Reason: "r"}, "validation_error"},
		{"unknown", errors.New("boom"), "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorKind(tc.err))
		})
	}
}
