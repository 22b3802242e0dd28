package request_models

type AddLedgerEntryRequest struct {
	Note     string  `json:"note"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type AddShoppingItemRequest struct {
	Name string `json:"name"`
}

type AccommodationRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type APIKeyRequest struct {
	Key string `json:"key"`
}
