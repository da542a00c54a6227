package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID generates a random ID for entities
func GenerateID() string {
	return uuid.New().String()
}

// GenerateInvoiceNo builds an invoice number such as "P/2024-25/3F9A1C".
// The prefix is P for purchases and S for sales.
func GenerateInvoiceNo(dealType string, dealDate time.Time) string {
	prefix := "S"
	if dealType == DealTypePurchase {
		prefix = "P"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s/%s/%s", prefix, FinancialYearLabel(dealDate), suffix)
}
