package billing

import (
	"fmt"
	"net/url"
	"strings"

	"salonhq/models"
)

// BillMessageLink builds the wa.me link the front desk taps after completing
// a service. WhatsApp wants a digits-only phone in the path and a urlencoded
// text parameter.
func BillMessageLink(bill models.Bill, baseURL string) string {
	message := fmt.Sprintf(
		"Hello %s, this is your bill: %s/%s. Total amount: ₹%.0f. Thank you for visiting!",
		bill.ClientName, strings.TrimRight(baseURL, "/"), bill.ID, bill.TotalAmount,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(bill.ClientContact), url.QueryEscape(message))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
