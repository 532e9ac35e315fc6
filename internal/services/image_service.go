package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const imageSearchBaseURL = "https://api.unsplash.com/search/photos"

// ImageResult is one hit from the image-search provider.
type ImageResult struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	ThumbURL    string `json:"thumb_url"`
	Credit      string `json:"credit,omitempty"`
}

type ImageService struct {
	accessKey  string
	httpClient *http.Client
}

func NewImageService(accessKey string) *ImageService {
	return &ImageService{
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type unsplashResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		URLs        struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

func (is *ImageService) Search(ctx context.Context, query string, perPage int) ([]ImageResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if is.accessKey == "" {
		return nil, fmt.Errorf("image search provider is not configured")
	}
	if perPage <= 0 || perPage > 30 {
		perPage = 10
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageSearchBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image search request: %v", err)
	}
	req.Header.Set("Authorization", "Client-ID "+is.accessKey)

	resp, err := is.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search images: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image provider returned status %d", resp.StatusCode)
	}

	var raw unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode image search response: %v", err)
	}

	results := make([]ImageResult, 0, len(raw.Results))
	for _, hit := range raw.Results {
		results = append(results, ImageResult{
			ID:          hit.ID,
			Description: hit.Description,
			URL:         hit.URLs.Regular,
			ThumbURL:    hit.URLs.Thumb,
			Credit:      hit.User.Name,
		})
	}

	return results, nil
}
