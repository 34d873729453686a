package manual

import (
	"bufio"
	"io"
	"strings"
)

// CommentPrefix marks a line that is ignored by the parser.
const CommentPrefix = ";"

// Manual owns every Resource and Recipe parsed from one or more sources.
// It is not safe for concurrent mutation.
type Manual struct {
	resources []*Resource
	byName    map[string]ResourceID
	recipes   []*Recipe
}

// New returns an empty manual.
func New() *Manual {
	return &Manual{
		byName: make(map[string]ResourceID),
	}
}

// Parse reads a complete manual from r. source names the input in errors.
func Parse(r io.Reader, source string) (*Manual, error) {
	m := New()
	if err := m.Read(r, source); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseString is Parse over an in-memory manual.
func ParseString(text, source string) (*Manual, error) {
	return Parse(strings.NewReader(text), source)
}

// Read parses r and appends its recipes to the manual. Parsing stops at the
// first malformed line; recipes read before it are kept.
func (m *Manual) Read(r io.Reader, source string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}
		if err := m.parseLine(source, line, text); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Intern returns the id for name, registering an empty Resource first if the
// name is new.
func (m *Manual) Intern(name string) ResourceID {
	if id, ok := m.byName[name]; ok {
		return id
	}
	id := ResourceID(len(m.resources))
	m.resources = append(m.resources, &Resource{ID: id, Name: name})
	m.byName[name] = id
	return id
}

// Lookup returns the id registered for name.
func (m *Manual) Lookup(name string) (ResourceID, bool) {
	id, ok := m.byName[name]
	return id, ok
}

// Resource returns the resource with the given id. It panics on an id that
// was not issued by this manual.
func (m *Manual) Resource(id ResourceID) *Resource {
	return m.resources[id]
}

// Recipe returns the recipe with the given id.
func (m *Manual) Recipe(id RecipeID) *Recipe {
	return m.recipes[id]
}

// Resources returns all resources in registration order.
func (m *Manual) Resources() []*Resource {
	return m.resources
}

// Recipes returns all recipes in declaration order.
func (m *Manual) Recipes() []*Recipe {
	return m.recipes
}

// AddRecipe registers rec, assigning its ID and attaching it to its product.
func (m *Manual) AddRecipe(rec *Recipe) RecipeID {
	rec.ID = RecipeID(len(m.recipes))
	m.recipes = append(m.recipes, rec)
	product := m.resources[rec.Product]
	product.Recipes = append(product.Recipes, rec.ID)
	return rec.ID
}
