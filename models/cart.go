package models

// Cart is the user's in-progress, unsubmitted list of order lines. It lives
// in the session and is discarded on logout or successful submission.
type Cart struct {
	Lines []OrderItem
}

// Add upserts a line keyed by item name: adding an item that is already in
// the cart replaces its line in place rather than duplicating it. Cost is
// computed as quantity times the unit rate.
func (c *Cart) Add(item string, quantity, rate int) {
	line := OrderItem{Item: item, Quantity: quantity, Cost: quantity * rate}
	for i := range c.Lines {
		if c.Lines[i].Item == item {
			c.Lines[i] = line
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Total is the sum of the line costs.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Cost
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Clear drops all lines.
func (c *Cart) Clear() {
	c.Lines = nil
}
