package csvstore

import "cm-madeira/go_backend/internal/domain/quote"

var clientColumns = []string{"Name", "Phone", "Document", "Address"}

func (s *Store) LoadClients() ([]quote.Client, error) {
	rows, err := readRows(s.clientsPath, clientColumns)
	if err != nil {
		return nil, err
	}
	clients := make([]quote.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, quote.Client{
			Name:     row[0],
			Phone:    row[1],
			Document: row[2],
			Address:  row[3],
		})
	}
	return clients, nil
}

func (s *Store) AppendClient(c quote.Client) error {
	return appendRow(s.clientsPath, clientColumns, []string{c.Name, c.Phone, c.Document, c.Address})
}
