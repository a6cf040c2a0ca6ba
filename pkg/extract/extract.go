// Package extract turns source material (web pages, YouTube transcripts,
// PDF files) into plain text for summarization.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// ErrExtractionFailed indicates a source that yielded no usable text. The
// pipeline maps it to an unprocessable-content response; no LLM call is
// made and nothing is charged.
var ErrExtractionFailed = errors.New("content extraction failed")

// maxBodyBytes caps fetched page bodies.
const maxBodyBytes = 10 << 20

// Extractor fetches and converts source content to plain text.
type Extractor struct {
	httpClient *http.Client
}

// New creates an Extractor with a default HTTP client.
func New() *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithClient creates an Extractor with a custom HTTP client.
func NewWithClient(client *http.Client) *Extractor {
	return &Extractor{httpClient: client}
}

// Webpage fetches a URL and strips it down to readable text.
func (e *Extractor) Webpage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url: %v", ErrExtractionFailed, err)
	}
	req.Header.Set("User-Agent", "clipd/1.0 (+https://github.com/clipdock/clipd)")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetch failed: %v", ErrExtractionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: fetch returned status %d", ErrExtractionFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrExtractionFailed, err)
	}
	text, err := HTMLToText(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: page contains no text", ErrExtractionFailed)
	}
	return text, nil
}

// YouTube normalizes a caller-supplied transcript. Transcript retrieval
// happens client-side; the server only cleans and validates it.
func (e *Extractor) YouTube(_ context.Context, transcript string) (string, error) {
	text := normalizeWhitespace(transcript)
	if text == "" {
		return "", fmt.Errorf("%w: empty transcript", ErrExtractionFailed)
	}
	return text, nil
}

// PDF extracts the plain text of a PDF document.
func (e *Extractor) PDF(_ context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document", ErrExtractionFailed)
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parsing pdf: %v", ErrExtractionFailed, err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extracting pdf text: %v", ErrExtractionFailed, err)
	}
	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("%w: reading pdf text: %v", ErrExtractionFailed, err)
	}
	text := normalizeWhitespace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: document contains no text", ErrExtractionFailed)
	}
	return text, nil
}

// skippedElements never contribute readable text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"head":     true,
	"nav":      true,
	"footer":   true,
}

// HTMLToText parses HTML and collects the visible text content.
func HTMLToText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("%w: parsing html: %v", ErrExtractionFailed, err)
	}
	var sb strings.Builder
	collectText(doc, &sb)
	return normalizeWhitespace(sb.String()), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}

// normalizeWhitespace collapses runs of whitespace into single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
