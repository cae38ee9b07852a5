package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

// Source yields the full airport list. It is read once per directory load.
type Source interface {
	Name() string
	Airports(ctx context.Context) ([]entity.Airport, error)
}

type document struct {
	Airports []entity.Airport `json:"aeropuertos"`
}

func decodeDocument(data []byte) ([]entity.Airport, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Airports == nil {
		return []entity.Airport{}, nil
	}
	return doc.Airports, nil
}

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string {
	return "file"
}

func (f *FileSource) Airports(_ context.Context) ([]entity.Airport, error) {
	data, err := os.ReadFile(filepath.Clean(f.path))
	if err != nil {
		return nil, fmt.Errorf("airports read file: %w", err)
	}
	airports, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("airports decode: %w", err)
	}
	return airports, nil
}

type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (h *HTTPSource) Name() string {
	return "http"
}

func (h *HTTPSource) Airports(ctx context.Context) ([]entity.Airport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("airports build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airports fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("airports read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("airports fetch: status %d", resp.StatusCode)
	}

	airports, err := decodeDocument(body)
	if err != nil {
		return nil, fmt.Errorf("airports decode: %w", err)
	}
	return airports, nil
}
