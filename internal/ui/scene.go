// Package ui is the lobby's UI projection: a named element tree loaded
// from a YAML layout, the mutations applied by UI-update commands, and
// the user actions raised by clicks.
package ui

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
)

//go:embed defaults/layout.yaml
var defaultLayoutYAML []byte

// GameUIDocument is the document name the lobby surface lives in.
const GameUIDocument = "GameUI"

// ElementType controls how an element is drawn.
type ElementType string

const (
	TypeContainer ElementType = "container"
	TypeLabel     ElementType = "label"
	TypeIcon      ElementType = "icon"
	TypeButton    ElementType = "button"
	TypeView      ElementType = "view"
)

// Layout is the direction children are stacked in.
type Layout string

const (
	LayoutColumn Layout = "column"
	LayoutRow    Layout = "row"
)

// Element is one node of a document tree.
type Element struct {
	Name     string      `yaml:"name"`
	Type     ElementType `yaml:"type"`
	Text     string      `yaml:"text"`
	Layout   Layout      `yaml:"layout"`
	Hidden   bool        `yaml:"hidden"`
	Children []*Element  `yaml:"children"`

	Icon    assets.Handle   `yaml:"-"`
	Classes map[string]bool `yaml:"-"`
	OnClick func()          `yaml:"-"`
}

// Add appends a child element.
func (e *Element) Add(child *Element) {
	e.Children = append(e.Children, child)
}

// AddClass sets a style class.
func (e *Element) AddClass(class string) {
	if e.Classes == nil {
		e.Classes = make(map[string]bool)
	}
	e.Classes[class] = true
}

// RemoveClass clears a style class.
func (e *Element) RemoveClass(class string) {
	delete(e.Classes, class)
}

// HasClass reports whether class is set.
func (e *Element) HasClass(class string) bool {
	return e.Classes[class]
}

// Q finds the first element named name in the subtree, depth first.
func (e *Element) Q(name string) *Element {
	if e == nil {
		return nil
	}
	if e.Name == name {
		return e
	}
	for _, c := range e.Children {
		if found := c.Q(name); found != nil {
			return found
		}
	}
	return nil
}

// Document is a named element tree.
type Document struct {
	Name string   `yaml:"name"`
	Root *Element `yaml:"root"`
}

// Q finds an element by name.
func (d *Document) Q(name string) *Element {
	if d == nil {
		return nil
	}
	return d.Root.Q(name)
}

// Scene is the set of documents available to the lobby.
type Scene struct {
	Documents []*Document `yaml:"documents"`
}

// Find returns the document named name, or nil.
func (s *Scene) Find(name string) *Document {
	if s == nil {
		return nil
	}
	for _, d := range s.Documents {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// ParseScene decodes a YAML layout.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("ui: parse layout: %w", err)
	}
	for _, d := range s.Documents {
		if d.Root == nil {
			return nil, fmt.Errorf("ui: document %q has no root", d.Name)
		}
		normalize(d.Root)
	}
	return &s, nil
}

// LoadScene reads a layout file, or the embedded default when path is empty.
func LoadScene(path string) (*Scene, error) {
	if path == "" {
		return ParseScene(defaultLayoutYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ui: read layout %s: %w", path, err)
	}
	return ParseScene(data)
}

func normalize(e *Element) {
	if e.Type == "" {
		e.Type = TypeContainer
	}
	if e.Layout == "" {
		e.Layout = LayoutColumn
	}
	for _, c := range e.Children {
		normalize(c)
	}
}
