package markup

import (
	"fmt"
	"regexp"

	"github.com/beevik/etree"
)

// writeSettings keeps the output as close to the template as etree allows:
// quotes and '>' stay literal in text and attribute values, and tabs and
// line breaks inside attribute values are written as character references
// so a reader does not normalize them to spaces. etree does not remember
// the source quote character or whether an empty element was written as
// <a></a> or <a/>, so every attribute is double quoted and every empty
// element self-closes.
var writeSettings = etree.WriteSettings{
	CanonicalText:    true,
	CanonicalAttrVal: true,
}

// SerializeOptions controls how a Document is rendered back to text.
type SerializeOptions struct {
	// Indent pretty-prints the tree with this many spaces per level.
	// Zero keeps the source whitespace.
	Indent int
}

// textElementBreaks matches a text-bearing element whose character content
// was pushed onto its own line by the printer.
var textElementBreaks = regexp.MustCompile(
	`(<(?:[\w-]+:)?(?:text|tspan)\b[^>]*>)[\r\n]+[ \t]*([^<\r\n]*)[\r\n]+[ \t]*(</(?:[\w-]+:)?(?:text|tspan)>)`,
)

// Serialize renders the document. Pretty printing happens on a copy, so
// repeated calls never accumulate whitespace in the shared tree.
func (d *Document) Serialize(opts SerializeOptions) (string, error) {
	tree := d.tree
	if opts.Indent > 0 {
		tree = d.tree.Copy()
		indentOutsideText(tree, opts.Indent)
	}

	s, err := tree.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return CollapseTextBreaks(s), nil
}

// indentOutsideText pretty-prints tree but leaves the content of text and
// tspan elements as it was: whitespace between a text element and its
// tspans is rendered under xml:space="preserve".
func indentOutsideText(tree *etree.Document, spaces int) {
	var texts, saved []*etree.Element
	var collect func(*etree.Element)
	collect = func(el *etree.Element) {
		if isTextTag(el.Tag) {
			texts = append(texts, el)
			saved = append(saved, el.Copy())
			return
		}
		for _, c := range el.ChildElements() {
			collect(c)
		}
	}
	collect(&tree.Element)

	tree.Indent(spaces)

	for i, el := range texts {
		for len(el.Child) > 0 {
			el.RemoveChildAt(0)
		}
		for len(saved[i].Child) > 0 {
			el.AddChild(saved[i].Child[0])
		}
	}
}

func isTextTag(tag string) bool {
	return tag == "text" || tag == "tspan"
}

// CollapseTextBreaks joins a text element's content back onto the line of
// its start and end tags.
func CollapseTextBreaks(s string) string {
	return textElementBreaks.ReplaceAllString(s, "$1$2$3")
}
