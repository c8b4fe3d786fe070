package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cm-madeira/go_backend/internal/domain/catalog"
	"cm-madeira/go_backend/internal/domain/quote"
	"cm-madeira/go_backend/internal/infra/store/csvstore"
)

func newStore(t *testing.T) (*csvstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return csvstore.New(filepath.Join(dir, "clients.csv"), filepath.Join(dir, "products.csv")), dir
}

func TestLoadAbsentFileIsEmptyCollection(t *testing.T) {
	s, _ := newStore(t)

	clients, err := s.LoadClients()
	require.NoError(t, err)
	require.Empty(t, clients)

	products, err := s.LoadProducts()
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestClientRoundTrip(t *testing.T) {
	s, _ := newStore(t)

	ana := quote.Client{Name: "Ana", Phone: "111", Document: "222", Address: "Rua A"}
	require.NoError(t, s.AppendClient(ana))

	clients, err := s.LoadClients()
	require.NoError(t, err)
	require.Equal(t, []quote.Client{ana}, clients)
}

func TestAppendPreservesPriorRecords(t *testing.T) {
	s, _ := newStore(t)

	first := quote.Client{Name: "Ana", Phone: "111", Document: "222", Address: "Rua A"}
	second := quote.Client{Name: "Bruno", Phone: "333", Document: "444", Address: "Rua B"}
	require.NoError(t, s.AppendClient(first))
	require.NoError(t, s.AppendClient(second))

	clients, err := s.LoadClients()
	require.NoError(t, err)
	require.Equal(t, []quote.Client{first, second}, clients)
}

func TestProductRoundTrip(t *testing.T) {
	s, _ := newStore(t)

	board := catalog.Product{Name: "Board", Unit: "piece", Price: 10.5, Stock: 20}
	require.NoError(t, s.AppendProduct(board))

	products, err := s.LoadProducts()
	require.NoError(t, err)
	require.Equal(t, []catalog.Product{board}, products)
}

func TestMalformedFileIsStorageError(t *testing.T) {
	s, dir := newStore(t)

	ragged := "Name,Phone,Document,Address\nAna,111\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.csv"), []byte(ragged), 0o644))

	_, err := s.LoadClients()
	var storageErr *csvstore.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestWrongHeaderIsStorageError(t *testing.T) {
	s, dir := newStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte("A,B\n1,2\n"), 0o644))

	_, err := s.LoadProducts()
	var storageErr *csvstore.StorageError
	require.ErrorAs(t, err, &storageErr)

	require.Error(t, s.AppendProduct(catalog.Product{Name: "Board"}))
}

func TestBadPriceIsStorageError(t *testing.T) {
	s, dir := newStore(t)

	body := "Product,Unit,Price,Stock\nBoard,piece,abc,20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte(body), 0o644))

	_, err := s.LoadProducts()
	var storageErr *csvstore.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestEmptyFileIsEmptyCollection(t *testing.T) {
	s, dir := newStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.csv"), []byte(""), 0o644))

	clients, err := s.LoadClients()
	require.NoError(t, err)
	require.Empty(t, clients)
}
