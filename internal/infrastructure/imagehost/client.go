package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/fleettrack/fleettrack/internal/domain"
)

// UploadResult содержит результат загрузки изображения
type UploadResult struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
	Bytes    int64  `json:"bytes"`
	Format   string `json:"format,omitempty"`
}

// Client - интерфейс для работы с внешним хостингом изображений.
// Изображения не хранятся у нас: в БД лежат только возвращенные
// хостингом долговечные URL.
type Client interface {
	// Upload загружает изображение и возвращает долговечный URL
	Upload(ctx context.Context, filename string, data io.Reader) (*UploadResult, error)

	// Delete удаляет изображение по URL (best-effort)
	Delete(ctx context.Context, imageURL string) error

	// Health проверяет доступность хостинга
	Health(ctx context.Context) error
}

// httpClient - HTTP реализация клиента хостинга изображений
type httpClient struct {
	baseURL      string
	uploadPreset string
	httpClient   *http.Client
}

// NewHTTPClient создает новый HTTP клиент для хостинга изображений
func NewHTTPClient(baseURL, uploadPreset string, timeout time.Duration) Client {
	return &httpClient{
		baseURL:      baseURL,
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Upload отправляет изображение на хостинг multipart-запросом.
// Хостинг настроен через unsigned upload preset, поэтому клиенту
// не нужны ключи подписи.
func (c *httpClient) Upload(ctx context.Context, filename string, data io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return nil, fmt.Errorf("failed to write upload preset: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/image/upload", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageHostUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: image host returned status %d: %s",
			domain.ErrImageHostUnavailable, resp.StatusCode, string(body))
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if result.URL == "" {
		return nil, fmt.Errorf("%w: image host returned empty url", domain.ErrImageHostUnavailable)
	}

	return &result, nil
}

// Delete удаляет изображение по URL. Вызывается best-effort:
// неудача не должна ломать операцию, которая его вызвала.
func (c *httpClient) Delete(ctx context.Context, imageURL string) error {
	deleteURL := fmt.Sprintf("%s/image/destroy?url=%s", c.baseURL, url.QueryEscape(imageURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImageHostUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: image host returned status %d: %s",
			domain.ErrImageHostUnavailable, resp.StatusCode, string(body))
	}

	return nil
}

// Health проверяет доступность хостинга изображений
func (c *httpClient) Health(ctx context.Context) error {
	healthURL := fmt.Sprintf("%s/health", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("health check returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
