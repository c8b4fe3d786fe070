package catalog

type Product struct {
	Name  string
	Unit  string
	Price float64
	Stock int
}
