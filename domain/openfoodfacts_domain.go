package domain

import "errors"

var (
	MessageSuccessBarcodeLookup = "product details retrieved successfully"

	MessageFailedBarcodeLookup = "failed to look up barcode"
	MessageProductNotFound     = "product not found"

	ErrBarcodeRequired          = errors.New("barcode is required")
	ErrOpenFoodFactsUnavailable = errors.New("openfoodfacts request failed")
)

// BarcodeProduct is the lookup result. A barcode unknown to the product
// database yields Found == false rather than an error.
type BarcodeProduct struct {
	Barcode     string `json:"barcode"`
	Found       bool   `json:"found"`
	ProductName string `json:"productName"`
	Brands      string `json:"brands"`
	Category    string `json:"category"`
	Quantity    string `json:"quantity"`
}
