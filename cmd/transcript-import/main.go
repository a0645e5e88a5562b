// Command transcript-import harvests candidate training sentences from an
// exported HTML chat transcript and emits a corpus YAML skeleton. All
// sentences land under one placeholder intent for a human to sort into
// real intents and tag.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		in       = flag.String("in", "", "transcript HTML file path or http(s) URL (required)")
		out      = flag.String("out", "-", "output corpus YAML path, '-' for stdout")
		intent   = flag.String("intent", "triage", "placeholder intent name for harvested sentences")
		minWords = flag.Int("min-words", 2, "drop sentences shorter than this many words")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("--in is required")
	}

	raw, err := readSource(*in)
	if err != nil {
		log.Fatalf("read transcript: %v", err)
	}

	text := stripHTML(raw)
	sentences := splitSentences(text, *minWords)
	if len(sentences) == 0 {
		log.Fatal("no usable sentences found in transcript")
	}

	data, err := yaml.Marshal(map[string][]string{*intent: sentences})
	if err != nil {
		log.Fatalf("encode corpus: %v", err)
	}

	if *out == "-" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write corpus: %v", err)
	}
	log.Printf("wrote %s: %d sentences under intent %q", *out, len(sentences), *intent)
}

func readSource(src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(src)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: status %d", src, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	body, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// splitSentences cuts extracted text on terminators and newlines and
// drops fragments too short to be training examples.
func splitSentences(text string, minWords int) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})

	seen := make(map[string]struct{})
	var out []string
	for _, f := range fields {
		s := strings.Join(strings.Fields(f), " ")
		if s == "" || len(strings.Fields(s)) < minWords {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
