package gofpdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cm-madeira/go_backend/internal/domain/quote"
	"cm-madeira/go_backend/internal/domain/quote/pdf"
)

func sampleQuote() quote.Quote {
	return quote.Quote{
		Number:    "ORC-1",
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Client: quote.Client{
			Name:     "Ana",
			Phone:    "111",
			Document: "222",
			Address:  "Rua A",
		},
		Lines: []quote.Line{
			{Product: "Board", Unit: "piece", Qty: 3, UnitPrice: 10.00, LineTotal: 30.00},
		},
		DiscountPercent: 10,
		Subtotal:        30.00,
		DiscountAmount:  3.00,
		Total:           27.00,
		ValidityTerm:    "10 days",
		PaymentMethod:   "PIX",
	}
}

func TestGenerateRejectsEmptyQuote(t *testing.T) {
	g := New("", "CM Casa da Madeira")
	q := sampleQuote()
	q.Lines = nil
	_, err := g.Generate(q)
	require.ErrorIs(t, err, pdf.ErrNoLines)
}

func TestGenerateProducesPDF(t *testing.T) {
	g := New("", "CM Casa da Madeira")
	out, err := g.Generate(sampleQuote())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateMissingLogoDoesNotFail(t *testing.T) {
	g := New("no/such/logo.png", "")
	out, err := g.Generate(sampleQuote())
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestMoneyFormatting(t *testing.T) {
	require.Equal(t, "R$ 30.00", money(30))
	require.Equal(t, "R$ 27.00", money(27))
	require.Equal(t, "R$ 3.00", money(2.999999999))
}
