package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// Text reads a stored PDF and returns its plain text.
// Library used: github.com/ledongthuc/pdf. Corrupt or encrypted PDFs fail.
func Text(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("extract text: read: %w", err)
	}

	text, err := TextFromBytes(raw)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}

// TextFromBytes extracts plain text from an in-memory PDF payload.
func TextFromBytes(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs; fold those into errors
	// so callers can degrade to an empty keyword list.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
