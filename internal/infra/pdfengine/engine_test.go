package pdfengine

import (
	"strings"
	"testing"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"
	"github.com/Thomaslgrn/pdftotexte/internal/testutil/pdffixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", EngineFitz},
		{"fitz", EngineFitz},
		{"MuPDF", EngineFitz},
		{"ledongthuc", EnginePlain},
		{" plain ", EnginePlain},
	}
	for _, tt := range tests {
		engine, err := NewEngine(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, engine.Name())
	}

	_, err := NewEngine("pdfplumber")
	assert.ErrorIs(t, err, domain.ErrUnknownEngine)
}

func engines() []domain.PDFEngine {
	return []domain.PDFEngine{NewFitzEngine(), NewPlainEngine()}
}

func TestEngines_ExtractPerPage(t *testing.T) {
	data := pdffixture.Build("Hello World", "", "Second page (draft)")

	for _, engine := range engines() {
		t.Run(engine.Name(), func(t *testing.T) {
			doc, err := engine.Open(data)
			require.NoError(t, err)
			defer doc.Close()

			require.Equal(t, 3, doc.NumPage())

			first, err := doc.PageText(1)
			require.NoError(t, err)
			assert.Contains(t, first, "Hello World")

			blank, err := doc.PageText(2)
			require.NoError(t, err)
			assert.Empty(t, strings.TrimSpace(blank))

			third, err := doc.PageText(3)
			require.NoError(t, err)
			assert.Contains(t, third, "Second page (draft)")
		})
	}
}

func TestEngines_PageOutOfRange(t *testing.T) {
	data := pdffixture.Build("only page")

	for _, engine := range engines() {
		t.Run(engine.Name(), func(t *testing.T) {
			doc, err := engine.Open(data)
			require.NoError(t, err)
			defer doc.Close()

			_, err = doc.PageText(0)
			assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
			_, err = doc.PageText(2)
			assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
		})
	}
}

func TestEngines_RejectNonPDF(t *testing.T) {
	inputs := map[string][]byte{
		"plain text": []byte("this is not a PDF, just a renamed text file"),
		"empty":      {},
	}

	for _, engine := range engines() {
		for name, data := range inputs {
			t.Run(engine.Name()+"/"+name, func(t *testing.T) {
				doc, err := engine.Open(data)
				if err == nil {
					doc.Close()
				}
				require.Error(t, err)
				assert.NotEmpty(t, err.Error())
			})
		}
	}
}

func TestEngines_FontNamesScopedPerPage(t *testing.T) {
	// Both pages draw (A) with /F1, but page 2's /F1 maps code 65 to B.
	data := pdffixture.BuildPages(
		pdffixture.Page{Text: "A"},
		pdffixture.Page{Text: "A", Differences: "65 /B"},
	)

	for _, engine := range engines() {
		t.Run(engine.Name(), func(t *testing.T) {
			doc, err := engine.Open(data)
			require.NoError(t, err)
			defer doc.Close()

			first, err := doc.PageText(1)
			require.NoError(t, err)
			assert.Equal(t, "A", strings.TrimSpace(first))

			second, err := doc.PageText(2)
			require.NoError(t, err)
			assert.Equal(t, "B", strings.TrimSpace(second))

			again, err := doc.PageText(1)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		})
	}
}
