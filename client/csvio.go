package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// CSVService handles CSV bulk import and export.
type CSVService struct {
	c *Client
}

// uploadResponse wraps the import confirmation message.
type uploadResponse struct {
	CreatedPeople string `json:"created_people"`
}

// Upload imports people from a CSV file. The file must carry the Portuguese
// header (nome, data_nascimento, genero, nacionalidade, ...) with day-first
// dates. Returns the server's confirmation message.
func (s *CSVService) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+"/people/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", parseAPIError(resp.StatusCode, respBody)
	}

	var result uploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return result.CreatedPeople, nil
}

// Download exports the people with the given IDs as CSV bytes. Returns a
// not-found APIError when no records match (an empty id set included).
func (s *CSVService) Download(ctx context.Context, ids []int64) ([]byte, error) {
	if ids == nil {
		ids = []int64{}
	}
	return s.c.doRaw(ctx, http.MethodPost, "/people/download", ids)
}
