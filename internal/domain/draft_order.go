package domain

import "encoding/json"

// RawDraftOrder is the subset of Shopify's draft order resource read by the normalizer.
// Pass-through fields keep their raw JSON so that an absent field stays absent and a
// null stays null.
type RawDraftOrder struct {
	ID            json.RawMessage  `json:"id,omitempty"`
	Email         json.RawMessage  `json:"email,omitempty"`
	Currency      json.RawMessage  `json:"currency,omitempty"`
	InvoiceSentAt json.RawMessage  `json:"invoice_sent_at,omitempty"`
	CreatedAt     json.RawMessage  `json:"created_at,omitempty"`
	TaxExempt     json.RawMessage  `json:"tax_exempt,omitempty"`
	Name          json.RawMessage  `json:"name,omitempty"`
	Status        json.RawMessage  `json:"status,omitempty"`
	Tags          json.RawMessage  `json:"tags,omitempty"`
	TotalPrice    json.RawMessage  `json:"total_price,omitempty"`
	SubtotalPrice json.RawMessage  `json:"subtotal_price,omitempty"`
	TotalTax      json.RawMessage  `json:"total_tax,omitempty"`
	LineItems     []RawLineItem    `json:"line_items,omitempty"`
	PaymentTerms  *RawPaymentTerms `json:"payment_terms,omitempty"`
}

// RawLineItem holds the line item fields flattened into a DraftOrder
type RawLineItem struct {
	VariantID *int64  `json:"variant_id,omitempty"`
	ProductID *int64  `json:"product_id,omitempty"`
	Title     *string `json:"title,omitempty"`
	SKU       *string `json:"sku,omitempty"`
	Vendor    *string `json:"vendor,omitempty"`
	Quantity  *int64  `json:"quantity,omitempty"`
	Grams     *int64  `json:"grams,omitempty"`
}

// RawPaymentTerms holds the payment terms fields flattened into a DraftOrder
type RawPaymentTerms struct {
	PaymentTermsName *string `json:"payment_terms_name,omitempty"`
	PaymentTermsType *string `json:"payment_terms_type,omitempty"`
	DueInDays        *int64  `json:"due_in_days,omitempty"`
}

// DraftOrder is the flat, persisted shape of a draft order.
// Line item fields come from the first line item only.
type DraftOrder struct {
	ID               json.RawMessage `json:"id,omitempty"`
	Email            json.RawMessage `json:"email,omitempty"`
	Currency         json.RawMessage `json:"currency,omitempty"`
	InvoiceSentAt    json.RawMessage `json:"invoice_sent_at,omitempty"`
	CreatedAt        json.RawMessage `json:"created_at,omitempty"`
	TaxExempt        json.RawMessage `json:"tax_exempt,omitempty"`
	Name             json.RawMessage `json:"name,omitempty"`
	Status           json.RawMessage `json:"status,omitempty"`
	VariantID        *int64          `json:"variant_id"`
	ProductID        *int64          `json:"product_id"`
	Title            string          `json:"title"`
	SKU              string          `json:"sku"`
	Vendor           string          `json:"vendor"`
	Quantity         int64           `json:"quantity"`
	Grams            int64           `json:"grams"`
	Tags             json.RawMessage `json:"tags,omitempty"`
	TotalPrice       json.RawMessage `json:"total_price,omitempty"`
	SubtotalPrice    json.RawMessage `json:"subtotal_price,omitempty"`
	TotalTax         json.RawMessage `json:"total_tax,omitempty"`
	PaymentTermsName string          `json:"payment_terms_name"`
	PaymentTermsType string          `json:"payment_terms_type"`
	DueInDays        *int64          `json:"due_in_days"`
}
