package markup

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Attribute names used for lookups.
const (
	IDAttr    = "id"
	LabelAttr = "inkscape:label"
)

// Document is a parsed markup tree with identifier indexes.
// It is mutated in place and is not safe for concurrent use.
type Document struct {
	tree    *etree.Document
	byID    map[string]*etree.Element
	byLabel map[string]*etree.Element
}

// Load parses text into a Document.
// Returns ErrParse if the markup is not well formed.
func Load(text string) (*Document, error) {
	tree := etree.NewDocument()
	tree.WriteSettings = writeSettings
	if err := tree.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, ErrEmptyDoc)
	}

	d := &Document{
		tree:    tree,
		byID:    make(map[string]*etree.Element),
		byLabel: make(map[string]*etree.Element),
	}
	d.index(tree.Root())
	return d, nil
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		return nil, err
	}
	doc, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// index records the first element for every id and label, depth first.
func (d *Document) index(el *etree.Element) {
	for _, a := range el.Attr {
		switch a.FullKey() {
		case IDAttr:
			if _, seen := d.byID[a.Value]; !seen {
				d.byID[a.Value] = el
			}
		case LabelAttr:
			if _, seen := d.byLabel[a.Value]; !seen {
				d.byLabel[a.Value] = el
			}
		}
	}
	for _, child := range el.ChildElements() {
		d.index(child)
	}
}

// FindByID returns the first element whose id equals id, or nil.
func (d *Document) FindByID(id string) *Element {
	if el, ok := d.byID[id]; ok {
		return &Element{el: el}
	}
	return nil
}

// FindByLabel returns the first element whose label attribute equals label, or nil.
func (d *Document) FindByLabel(label string) *Element {
	if el, ok := d.byLabel[label]; ok {
		return &Element{el: el}
	}
	return nil
}

// Find tries FindByID first and falls back to FindByLabel.
func (d *Document) Find(key string) *Element {
	if el := d.FindByID(key); el != nil {
		return el
	}
	return d.FindByLabel(key)
}

// Walk calls fn for every element in document order.
// Walking stops early when fn returns false.
func (d *Document) Walk(fn func(*Element) bool) {
	walk(d.tree.Root(), fn)
}

func walk(el *etree.Element, fn func(*Element) bool) bool {
	if !fn(&Element{el: el}) {
		return false
	}
	for _, child := range el.ChildElements() {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Element is a handle to one node of a Document.
type Element struct {
	el *etree.Element
}

// Tag returns the element name including any namespace prefix.
func (e *Element) Tag() string {
	return e.el.FullTag()
}

// ID returns the id attribute, or "" if absent.
func (e *Element) ID() string {
	return e.el.SelectAttrValue(IDAttr, "")
}

// Attr returns the value of the named attribute and whether it exists.
func (e *Element) Attr(key string) (string, bool) {
	a := e.el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// SetAttr creates or overwrites an attribute, keeping its position if present.
func (e *Element) SetAttr(key, value string) {
	e.el.CreateAttr(key, value)
}

// Style parses the element's style attribute.
func (e *Element) Style() Style {
	v, _ := e.Attr("style")
	return ParseStyle(v)
}

// StyleProperty returns one style declaration's value.
func (e *Element) StyleProperty(key string) (string, bool) {
	return e.Style().Get(key)
}

// SetStyleProperty rewrites only the named style property. Every other
// declaration keeps its exact text and position.
func (e *Element) SetStyleProperty(key, value string) {
	s := e.Style()
	s.Set(key, value)
	e.SetAttr("style", s.String())
}

// SetVisible turns display:none into display:inline and reports whether it
// changed anything. An element without a display property is treated as
// already visible.
func (e *Element) SetVisible() bool {
	v, ok := e.StyleProperty("display")
	if !ok || v != "none" {
		return false
	}
	e.SetStyleProperty("display", "inline")
	return true
}

// Visible reports whether the element's style does not hide it.
func (e *Element) Visible() bool {
	v, ok := e.StyleProperty("display")
	return !ok || v != "none"
}

// Text returns the character data directly following the start tag.
func (e *Element) Text() string {
	return e.el.Text()
}

// SetText replaces the whole content of the element, child elements
// included, with text.
func (e *Element) SetText(text string) {
	e.el.Child = nil
	e.el.SetText(text)
}
