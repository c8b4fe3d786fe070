package csvstore

import (
	"fmt"
	"strconv"

	"cm-madeira/go_backend/internal/domain/catalog"
)

var productColumns = []string{"Product", "Unit", "Price", "Stock"}

func (s *Store) LoadProducts() ([]catalog.Product, error) {
	rows, err := readRows(s.productsPath, productColumns)
	if err != nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, &StorageError{Path: s.productsPath, Err: fmt.Errorf("bad price %q for %q", row[2], row[0])}
		}
		stock, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, &StorageError{Path: s.productsPath, Err: fmt.Errorf("bad stock %q for %q", row[3], row[0])}
		}
		products = append(products, catalog.Product{
			Name:  row[0],
			Unit:  row[1],
			Price: price,
			Stock: stock,
		})
	}
	return products, nil
}

func (s *Store) AppendProduct(p catalog.Product) error {
	return appendRow(s.productsPath, productColumns, []string{
		p.Name,
		p.Unit,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		strconv.Itoa(p.Stock),
	})
}
