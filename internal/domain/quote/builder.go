package quote

import "cm-madeira/go_backend/internal/domain/catalog"

// BuildLines resolves a selection against the catalog, preserving
// selection order. Quantities are checked against recorded stock; stock
// itself is informational and never decremented here.
func BuildLines(selection []Selection, products []catalog.Product) ([]Line, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	lines := make([]Line, 0, len(selection))
	for _, sel := range selection {
		p, ok := findProduct(products, sel.Product)
		if !ok {
			return nil, &UnknownProductError{Name: sel.Product}
		}
		if sel.Qty < 1 {
			return nil, &InvalidQuantityError{Product: sel.Product, Qty: sel.Qty}
		}
		if sel.Qty > p.Stock {
			return nil, &InsufficientStockError{Product: p.Name, Requested: sel.Qty, Stock: p.Stock}
		}
		lines = append(lines, Line{
			Product:   p.Name,
			Unit:      p.Unit,
			Qty:       sel.Qty,
			UnitPrice: p.Price,
			LineTotal: float64(sel.Qty) * p.Price,
		})
	}
	return lines, nil
}

// ApplyDiscount totals the lines and applies a quote-wide percentage
// discount. Values keep full precision; rounding is a display concern.
func ApplyDiscount(lines []Line, percent float64) (subtotal, discount, total float64, err error) {
	if percent < 0 || percent > 100 {
		return 0, 0, 0, &InvalidDiscountError{Percent: percent}
	}
	for _, l := range lines {
		subtotal += l.LineTotal
	}
	discount = subtotal * percent / 100
	total = subtotal - discount
	return subtotal, discount, total, nil
}

// Duplicate names are not guarded against in the collections; the first
// record in file order wins.
func findProduct(products []catalog.Product, name string) (catalog.Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return catalog.Product{}, false
}
