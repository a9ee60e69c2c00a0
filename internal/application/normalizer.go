package application

import "shopify-sync/internal/domain"

const notAvailable = "N/A"

// NormalizeDraftOrder flattens a raw draft order into the persisted shape.
// Only the first line item is read. Missing, empty and zero values fall back to the defaults,
// so a due_in_days of 0 becomes null and an empty sku becomes "N/A".
func NormalizeDraftOrder(raw domain.RawDraftOrder) domain.DraftOrder {
	var item domain.RawLineItem
	if len(raw.LineItems) > 0 {
		item = raw.LineItems[0]
	}
	var terms domain.RawPaymentTerms
	if raw.PaymentTerms != nil {
		terms = *raw.PaymentTerms
	}

	return domain.DraftOrder{
		ID:               raw.ID,
		Email:            raw.Email,
		Currency:         raw.Currency,
		InvoiceSentAt:    raw.InvoiceSentAt,
		CreatedAt:        raw.CreatedAt,
		TaxExempt:        raw.TaxExempt,
		Name:             raw.Name,
		Status:           raw.Status,
		VariantID:        nonZeroID(item.VariantID),
		ProductID:        nonZeroID(item.ProductID),
		Title:            stringOr(item.Title, ""),
		SKU:              stringOr(item.SKU, notAvailable),
		Vendor:           stringOr(item.Vendor, ""),
		Quantity:         intOr(item.Quantity, 0),
		Grams:            intOr(item.Grams, 0),
		Tags:             raw.Tags,
		TotalPrice:       raw.TotalPrice,
		SubtotalPrice:    raw.SubtotalPrice,
		TotalTax:         raw.TotalTax,
		PaymentTermsName: stringOr(terms.PaymentTermsName, notAvailable),
		PaymentTermsType: stringOr(terms.PaymentTermsType, notAvailable),
		DueInDays:        nonZeroID(terms.DueInDays),
	}
}

// NormalizeDraftOrders normalizes every draft order of a page, preserving order
func NormalizeDraftOrders(raws []domain.RawDraftOrder) []domain.DraftOrder {
	out := make([]domain.DraftOrder, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeDraftOrder(raw))
	}
	return out
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func intOr(v *int64, fallback int64) int64 {
	if v == nil || *v == 0 {
		return fallback
	}
	return *v
}

// nonZeroID maps nil and 0 to nil
func nonZeroID(v *int64) *int64 {
	if v == nil || *v == 0 {
		return nil
	}
	n := *v
	return &n
}
