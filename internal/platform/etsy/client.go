package etsy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client calls the Etsy listings API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns new Client calling the API at baseURL.
func NewClient(httpClient *http.Client, baseURL string, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// CreateListing creates a new draft listing and returns its listing id.
func (c *Client) CreateListing(ctx context.Context, language string, payload CreateListingPayload) (int64, error) {
	var results []struct {
		ListingID int64 `json:"listing_id"`
	}

	path := fmt.Sprintf("/listings?language=%s", url.QueryEscape(language))
	if err := c.call(ctx, http.MethodPost, path, payload, &results); err != nil {
		return 0, fmt.Errorf("can't create listing: %w", err)
	}

	if len(results) == 0 {
		return 0, fmt.Errorf("can't create listing: %w", ErrMalformedResponse)
	}

	return results[0].ListingID, nil
}

// UpdateInventory replaces the whole inventory of the listing.
func (c *Client) UpdateInventory(ctx context.Context, listingID int64, update InventoryUpdate, language string) error {
	path := fmt.Sprintf("/listings/%d/inventory?language=%s", listingID, url.QueryEscape(language))
	if err := c.call(ctx, http.MethodPut, path, update, nil); err != nil {
		return fmt.Errorf("can't update inventory: %w", err)
	}

	return nil
}

// UploadListingImage uploads one image to the listing at provided position.
func (c *Client) UploadListingImage(ctx context.Context, listingID int64, imageURL string, position int) (*ListingImage, error) {
	payload := struct {
		Image string `json:"image"`
		Rank  int    `json:"rank"`
	}{
		Image: imageURL,
		Rank:  position,
	}

	var results []ListingImage

	path := fmt.Sprintf("/listings/%d/images", listingID)
	if err := c.call(ctx, http.MethodPost, path, payload, &results); err != nil {
		return nil, fmt.Errorf("can't upload listing image: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("can't upload listing image: %w", ErrMalformedResponse)
	}

	return &results[0], nil
}

// CreateListingTranslation pushes translated texts for one language.
func (c *Client) CreateListingTranslation(ctx context.Context, listingID int64, language string, payload TranslationPayload) error {
	path := fmt.Sprintf("/listings/%d/translations/%s", listingID, url.PathEscape(language))
	if err := c.call(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("can't create listing translation: %w", err)
	}

	return nil
}

// UpdateListing updates listing fields, used to switch the listing state.
func (c *Client) UpdateListing(ctx context.Context, listingID int64, payload UpdateListingPayload) error {
	path := fmt.Sprintf("/listings/%d", listingID)
	if err := c.call(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("can't update listing: %w", err)
	}

	return nil
}

// DeleteListing deletes the listing.
func (c *Client) DeleteListing(ctx context.Context, listingID int64) error {
	path := fmt.Sprintf("/listings/%d", listingID)
	if err := c.call(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("can't delete listing: %w", err)
	}

	return nil
}

func (c *Client) call(ctx context.Context, method string, path string, payload any, results any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("can't marshal request payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("X-Api-Key", c.apiKey)
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("can't read http response: %w", err)
	}

	return decodeResponse(respBody, results)
}
