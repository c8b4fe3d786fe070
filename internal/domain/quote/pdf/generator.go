package pdf

import (
	"errors"

	"cm-madeira/go_backend/internal/domain/quote"
)

var ErrNoLines = errors.New("quote has no lines to render")

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}
