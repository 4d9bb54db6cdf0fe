package utils

import (
	"fmt"

	"fastfood-ui/models"
)

// RateLabel renders a catalog price, e.g. "Ugx 5000 per block".
func RateLabel(rate int, unit string) string {
	return fmt.Sprintf("Ugx %d per %s", rate, unit)
}

// Pluralize appends a trailing "s" to the item name when more than one was
// ordered.
func Pluralize(name string, quantity int) string {
	if quantity > 1 {
		return name + "s"
	}
	return name
}

// LineLabel renders one order line, e.g. "2 Rices @ Ugx 10000".
func LineLabel(line models.OrderItem) string {
	return fmt.Sprintf("%d %s @ Ugx %d", line.Quantity, Pluralize(line.Item, line.Quantity), line.Cost)
}
