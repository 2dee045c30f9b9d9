package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/utils"
)

type (
	OpenFoodFactsClient interface {
		GetProductByBarcode(ctx context.Context, barcode string) (domain.BarcodeProduct, error)
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}
)

func NewOpenFoodFactsClient() OpenFoodFactsClient {
	baseURL := utils.GetConfig("OPENFOODFACTS_URL")
	if baseURL == "" {
		baseURL = "https://world.openfoodfacts.org"
	}
	return &openFoodFactsClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *openFoodFactsClient) GetProductByBarcode(ctx context.Context, barcode string) (domain.BarcodeProduct, error) {
	if strings.TrimSpace(barcode) == "" {
		return domain.BarcodeProduct{}, domain.ErrBarcodeRequired
	}

	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.BarcodeProduct{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.BarcodeProduct{}, fmt.Errorf("%w: %v", domain.ErrOpenFoodFactsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.BarcodeProduct{}, fmt.Errorf("%w: %s - %s", domain.ErrOpenFoodFactsUnavailable, resp.Status, string(bodyBytes))
	}

	var lookup struct {
		StatusVerbose string `json:"status_verbose"`
		Product       struct {
			ProductName string `json:"product_name"`
			Brands      string `json:"brands"`
			Categories  string `json:"categories"`
			Quantity    string `json:"quantity"`
		} `json:"product"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return domain.BarcodeProduct{}, fmt.Errorf("%w: %v", domain.ErrOpenFoodFactsUnavailable, err)
	}

	if lookup.StatusVerbose == "product not found" {
		return domain.BarcodeProduct{Barcode: barcode, Found: false}, nil
	}

	return domain.BarcodeProduct{
		Barcode:     barcode,
		Found:       true,
		ProductName: orUnknown(lookup.Product.ProductName),
		Brands:      orUnknown(lookup.Product.Brands),
		Category:    orUnknown(lookup.Product.Categories),
		Quantity:    orUnknown(lookup.Product.Quantity),
	}, nil
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Unknown"
	}
	return value
}
