package models

// Settings is the singleton configuration document. Field names follow the
// on-disk file format (barcode_url, service_charge).
type Settings struct {
	CafeName      string  `json:"cafe_name"`
	MenuURL       string  `json:"barcode_url"`
	TaxRate       float64 `json:"tax_rate"`
	ServiceCharge float64 `json:"service_charge"`
}
