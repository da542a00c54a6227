package models

import "time"

// Deal is a purchase or sale of a commodity recorded by a mill
type Deal struct {
	ID              string    `json:"id"`
	MillID          string    `json:"millId"`
	InvoiceNo       string    `json:"invoiceNo"`
	DealType        string    `json:"dealType"`
	Commodity       string    `json:"commodity"`
	PartyName       string    `json:"partyName"`
	PartyMobile     string    `json:"partyMobile,omitempty"`
	VehicleNo       string    `json:"vehicleNo,omitempty"`
	Bags            int       `json:"bags"`
	WeightKg        float64   `json:"weightKg"`
	PricePerQuintal float64   `json:"pricePerQuintal"`
	GSTRate         float64   `json:"gstRate"`
	TaxType         string    `json:"taxType"`
	BaseAmount      float64   `json:"baseAmount"`
	GSTAmount       float64   `json:"gstAmount"`
	TotalAmount     float64   `json:"totalAmount"`
	DealDate        time.Time `json:"dealDate"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateDealRequest request model
type CreateDealRequest struct {
	DealType        string  `json:"dealType" binding:"required,oneof=purchase sale"`
	Commodity       string  `json:"commodity" binding:"required,oneof=paddy rice broken_rice bran husk gunny"`
	PartyName       string  `json:"partyName" binding:"required"`
	PartyMobile     string  `json:"partyMobile" binding:"mobile_in"`
	VehicleNo       string  `json:"vehicleNo"`
	Bags            int     `json:"bags" binding:"min=0"`
	WeightKg        float64 `json:"weightKg" binding:"gt=0"`
	PricePerQuintal float64 `json:"pricePerQuintal" binding:"gt=0"`
	GSTRate         float64 `json:"gstRate" binding:"gst_rate"`
	TaxType         string  `json:"taxType" binding:"omitempty,oneof=exclusive inclusive"`
	DealDate        string  `json:"dealDate"`
	Note            string  `json:"note"`
}

// DealFilter narrows a deal listing. Nil bounds are open.
type DealFilter struct {
	MillID      string
	DealType    string
	Commodities []string
	Party       string
	From        *time.Time
	To          *time.Time
}
