// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-note-sync/models"
)

const frontmatterDelimiter = "---"

// frontmatter is the YAML header of a vault markdown file.
type frontmatter struct {
	ID       string            `yaml:"id"`
	Title    string            `yaml:"title,omitempty"`
	Tags     []string          `yaml:"tags,omitempty"`
	Created  time.Time         `yaml:"created"`
	Updated  time.Time         `yaml:"updated"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// encodeNote renders note as a markdown document with a YAML header.
func encodeNote(note models.Note) ([]byte, error) {
	header, err := yaml.Marshal(frontmatter{
		ID:       note.ID,
		Title:    note.Title,
		Tags:     note.Tags,
		Created:  note.CreatedAt.UTC(),
		Updated:  note.UpdatedAt.UTC(),
		Metadata: note.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(header) + len(note.Content) + 8)
	buf.WriteString(frontmatterDelimiter + "\n")
	buf.Write(header)
	buf.WriteString(frontmatterDelimiter + "\n")
	buf.WriteString(note.Content)
	return buf.Bytes(), nil
}

// decodeNote splits a markdown document into its header and body. A document
// without a header is all body.
func decodeNote(data []byte) (frontmatter, string, error) {
	var fm frontmatter

	opening := []byte(frontmatterDelimiter + "\n")
	if !bytes.HasPrefix(data, opening) {
		return fm, string(data), nil
	}

	rest := data[len(opening):]
	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, opening):
		header, body = nil, rest[len(opening):]
	default:
		closing := []byte("\n" + frontmatterDelimiter + "\n")
		idx := bytes.Index(rest, closing)
		if idx < 0 {
			if !bytes.HasSuffix(rest, []byte("\n"+frontmatterDelimiter)) {
				return fm, "", fmt.Errorf("%w: unterminated frontmatter", ErrMalformedNote)
			}
			header, body = rest[:len(rest)-len(frontmatterDelimiter)-1], nil
		} else {
			header, body = rest[:idx+1], rest[idx+len(closing):]
		}
	}

	if err := yaml.Unmarshal(header, &fm); err != nil {
		return fm, "", fmt.Errorf("%w: %w", ErrMalformedNote, err)
	}

	return fm, string(body), nil
}
