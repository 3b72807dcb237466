// Package parser reads transcripts into the immutable line corpus the engine works on.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/text/unicode/norm"
)

// maxLineBytes bounds a single transcript line.
const maxLineBytes = 1024 * 1024

// blockSelector lists the HTML elements whose text becomes corpus lines.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,pre,dt,dd,td"

// ReadLines splits plain text into lines. Trailing carriage returns are dropped
// and each line is NFC-normalized so composed and decomposed letters compare equal.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lines = append(lines, norm.NFC.String(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(lines) > 0 {
		lines[0] = strings.TrimPrefix(lines[0], "\uFEFF")
	}
	return lines, nil
}

// ReadHTML extracts transcript lines from an HTML page. go-readability distills the
// main content first; when it fails the whole body is used. Each block element
// contributes its text split on newlines, blank lines between elements preserved.
func ReadHTML(r io.Reader, pageURL string) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	content := string(raw)
	if parsedURL, err := url.Parse(pageURL); err == nil {
		p := readability.NewParser()
		if article, err := p.Parse(bytes.NewReader(raw), parsedURL); err == nil && strings.TrimSpace(article.Content) != "" {
			content = article.Content
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("br").ReplaceWithHtml("\n")

	var lines []string
	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		// nested blocks (p inside li, ...) are emitted by the inner element
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		for _, line := range strings.Split(s.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, norm.NFC.String(line))
		}
		if goquery.NodeName(s) != "li" {
			lines = append(lines, "")
		}
	})
	return lines, nil
}

// ReadFile reads a transcript from disk, choosing the reader by extension.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		return ReadHTML(f, "file://"+filepath.ToSlash(abs))
	default:
		return ReadLines(f)
	}
}
