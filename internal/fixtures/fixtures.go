// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fixtures provides the seed data loaded into the store at startup,
// either the built-in demo set or a YAML file supplied by the operator.
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blogadmin/internal/models"
)

// Set is a collection of categories and posts ready to be seeded.
type Set struct {
	Categories []models.Category
	Posts      []models.Post
}

// file is the on-disk YAML layout. Posts reference their category by id.
type file struct {
	Categories []models.Category `yaml:"categories"`
	Posts      []filePost        `yaml:"posts"`
}

type filePost struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Body        string `yaml:"body"`
	CreatedDate date   `yaml:"created_date"`
	CategoryID  int    `yaml:"category_id"`
}

// date reads and writes models.Date as a plain YYYY-MM-DD scalar.
type date struct {
	models.Date
}

func (d *date) UnmarshalYAML(n *yaml.Node) error {
	parsed, err := models.ParseDate(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	d.Date = parsed
	return nil
}

func (d date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Parse decodes a YAML fixture document. Unknown fields are rejected.
// Post category snapshots take their name from the file's categories; the
// store resolves them again when the set is seeded.
func Parse(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	set := &Set{Categories: f.Categories}
	names := make(map[int]string, len(f.Categories))
	for _, c := range f.Categories {
		names[c.ID] = c.Name
	}
	for _, p := range f.Posts {
		set.Posts = append(set.Posts, models.Post{
			ID:          p.ID,
			Title:       p.Title,
			Body:        p.Body,
			CreatedDate: p.CreatedDate.Date,
			Category:    models.Category{ID: p.CategoryID, Name: names[p.CategoryID]},
		})
	}
	return set, nil
}

// LoadFile reads and parses a YAML fixture file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a set in the YAML fixture layout accepted by Parse.
func Marshal(set *Set) ([]byte, error) {
	f := file{Categories: set.Categories}
	for _, p := range set.Posts {
		f.Posts = append(f.Posts, filePost{
			ID:          p.ID,
			Title:       p.Title,
			Body:        p.Body,
			CreatedDate: date{p.CreatedDate},
			CategoryID:  p.Category.ID,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode fixtures: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode fixtures: %w", err)
	}
	return buf.Bytes(), nil
}
