// internal/pkg/receipt/formatter.go
package receipt

import (
	"fmt"
	"strings"

	"github.com/your-org/snackshop-backend/internal/domain/order"
)

const divider = "-------------------------"

// FormatMoney renders a paise amount as rupees with two decimals
func FormatMoney(amount int64) string {
	return fmt.Sprintf("Rs %.2f", float64(amount)/100)
}

// Format renders an order as the canonical receipt text. It is a pure
// function of the order: no clock or randomness, so the same order always
// yields byte-identical output. The text is also the source content for the
// PDF rendering.
func Format(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "RECEIPT - Order ID: %s\n", o.OrderID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(divider + "\n")

	b.WriteString("Customer:\n")
	fmt.Fprintf(&b, "  - Name: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "  - Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "  - Address: %s\n", o.Address)
	b.WriteString(divider + "\n")

	b.WriteString("Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "  - %s (%s) | Qty: %d | Sub: %s\n",
			item.Name, item.Size, item.Quantity, FormatMoney(item.Subtotal))
	}
	b.WriteString(divider + "\n")

	fmt.Fprintf(&b, "Subtotal: %s\n", FormatMoney(o.Subtotal))
	fmt.Fprintf(&b, "Delivery charge: %s\n", FormatMoney(o.DeliveryCharge))
	fmt.Fprintf(&b, "Total: %s\n", FormatMoney(o.Total))
	b.WriteString(divider + "\n")

	b.WriteString("Thank you for your order!\n")

	return b.String()
}
