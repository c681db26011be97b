package quotes

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/verte-zerg/tuitype/internal/model"
	"gopkg.in/yaml.v3"
)

type quoteEntry struct {
	ID     int    `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Source string `json:"source" yaml:"source"`
	Length int    `json:"length" yaml:"length"`
}

type quoteFile struct {
	Language string       `json:"language" yaml:"language"`
	Quotes   []quoteEntry `json:"quotes" yaml:"quotes"`
}

// LoadFile reads a passage collection from disk. The format follows the
// extension: .json, .yaml, .yml or .txt, optionally compressed as .zst.
func LoadFile(path string) ([]model.Passage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quotes file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only quotes file.
			_ = cerr
		}
	}()

	var src io.Reader = file
	name := path
	if strings.EqualFold(filepath.Ext(name), ".zst") {
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer decoder.Close()
		src = decoder
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read quotes file: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	quotes, err := Parse(data, filepath.Ext(name), base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return quotes, nil
}

// Parse decodes passages in the format named by ext. Plain text holds one
// passage per line, attributed to source.
func Parse(data []byte, ext, source string) ([]model.Passage, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".txt":
		return parseText(data, source)
	default:
		return nil, fmt.Errorf("unsupported quotes format %q", ext)
	}
}

func parseJSON(data []byte) ([]model.Passage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []quoteEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return normalize(entries), nil
	}
	var f quoteFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, err
	}
	return normalize(f.Quotes), nil
}

func parseYAML(data []byte) ([]model.Passage, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var entries []quoteEntry
		if err := node.Content[0].Decode(&entries); err != nil {
			return nil, err
		}
		return normalize(entries), nil
	}
	var f quoteFile
	if err := node.Decode(&f); err != nil {
		return nil, err
	}
	return normalize(f.Quotes), nil
}

func parseText(data []byte, source string) ([]model.Passage, error) {
	var entries []quoteEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, quoteEntry{Text: line, Source: source})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return normalize(entries), nil
}

// normalize drops empty passages, fills missing lengths and assigns
// sequential IDs where the source had none.
func normalize(entries []quoteEntry) []model.Passage {
	out := make([]model.Passage, 0, len(entries))
	nextID := 1
	for _, e := range entries {
		if e.ID >= nextID {
			nextID = e.ID + 1
		}
	}
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		id := e.ID
		if id == 0 {
			id = nextID
			nextID++
		}
		length := e.Length
		if length <= 0 {
			length = utf8.RuneCountInString(text)
		}
		out = append(out, model.Passage{
			ID:     id,
			Text:   text,
			Source: strings.TrimSpace(e.Source),
			Length: length,
		})
	}
	return out
}
