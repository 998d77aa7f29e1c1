package statexml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/dockit/internal/domain/entity"
)

// Decode parses a state produced by Encode, decompressing it first when it
// does not start with an XML declaration. It validates structure only; use
// CheckHeader for the caller-specific checks.
func Decode(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyState
	}
	if IsCompressed(data) {
		plain, err := Decompress(data)
		if err != nil {
			return nil, err
		}
		data = plain
	}
	data = trimXMLPrefix(data)

	r := &reader{dec: xml.NewDecoder(bytes.NewReader(data))}
	root, err := r.firstElement()
	if err != nil {
		return nil, err
	}
	if root.Name.Local != RootElement {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRootElement, root.Name.Local)
	}
	return r.document(root)
}

type reader struct {
	dec *xml.Decoder
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedState, fmt.Sprintf(format, args...))
}

func (r *reader) firstElement() (xml.StartElement, error) {
	for {
		tok, err := r.dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrEmptyState
		}
		if err != nil {
			return xml.StartElement{}, malformed("%v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// children calls fn for each direct child element of the element just opened.
// fn must consume the child completely.
func (r *reader) children(fn func(xml.StartElement) error) error {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return malformed("%v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (r *reader) skip() error {
	if err := r.dec.Skip(); err != nil {
		return malformed("%v", err)
	}
	return nil
}

func attrValue(se xml.StartElement, names ...string) (string, bool) {
	for _, name := range names {
		for _, a := range se.Attr {
			if a.Name.Local == name {
				return a.Value, true
			}
		}
	}
	return "", false
}

func intAttrValue(se xml.StartElement, name string) (int, bool, error) {
	v, ok := attrValue(se, name)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, malformed("%s.%s: %q is not a number", se.Name.Local, name, v)
	}
	return n, true, nil
}

func boolAttrValue(se xml.StartElement, name string) bool {
	v, _ := attrValue(se, name)
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (r *reader) document(root xml.StartElement) (*Document, error) {
	doc := &Document{}
	version, ok, err := intAttrValue(root, "Version")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, malformed("missing Version attribute")
	}
	doc.Version = version

	if doc.UserVersion, doc.HasUserVersion, err = intAttrValue(root, "UserVersion"); err != nil {
		return nil, err
	}
	if _, _, err = intAttrValue(root, "Containers"); err != nil {
		return nil, err
	}
	doc.CentralWidget, _ = attrValue(root, "CentralWidget")

	err = r.children(func(se xml.StartElement) error {
		if se.Name.Local != "Container" {
			return r.skip()
		}
		c, err := r.container(se)
		if err != nil {
			return err
		}
		doc.Containers = append(doc.Containers, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *reader) container(se xml.StartElement) (*Container, error) {
	c := &Container{Floating: boolAttrValue(se, "Floating")}
	err := r.children(func(child xml.StartElement) error {
		switch child.Name.Local {
		case "Geometry":
			g, err := geometry(child)
			if err != nil {
				return err
			}
			c.Geometry = g
			return r.skip()
		case "Splitter", "Area":
			if c.Root != nil {
				return malformed("container has more than one root node")
			}
			n, err := r.node(child)
			if err != nil {
				return err
			}
			c.Root = n
			return nil
		case "SideBar":
			sb, err := r.sideBar(child)
			if err != nil {
				return err
			}
			c.SideBars = append(c.SideBars, sb)
			return nil
		}
		return r.skip()
	})
	return c, err
}

func geometry(se xml.StartElement) (*Geometry, error) {
	g := &Geometry{}
	for _, f := range []struct {
		name string
		dst  *int
	}{{"X", &g.X}, {"Y", &g.Y}, {"Width", &g.Width}, {"Height", &g.Height}} {
		v, _, err := intAttrValue(se, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	state, _ := attrValue(se, "State")
	g.State = entity.ParseWindowState(state)
	return g, nil
}

func (r *reader) node(se xml.StartElement) (*Node, error) {
	if se.Name.Local == "Area" {
		a, err := r.area(se)
		if err != nil {
			return nil, err
		}
		return &Node{Area: a}, nil
	}
	return r.splitter(se)
}

func parseOrientation(v string) (entity.Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "|", "horizontal":
		return entity.Horizontal, true
	case "-", "vertical":
		return entity.Vertical, true
	}
	return entity.Horizontal, false
}

func (r *reader) splitter(se xml.StartElement) (*Node, error) {
	ov, _ := attrValue(se, "Orientation")
	o, ok := parseOrientation(ov)
	if !ok {
		return nil, malformed("invalid splitter orientation %q", ov)
	}
	count, hasCount, err := intAttrValue(se, "Count")
	if err != nil {
		return nil, err
	}
	if !hasCount {
		return nil, malformed("splitter without Count")
	}

	n := &Node{Orientation: o}
	var sizesSeen bool
	err = r.children(func(child xml.StartElement) error {
		switch child.Name.Local {
		case "Splitter", "Area":
			c, err := r.node(child)
			if err != nil {
				return err
			}
			n.Children = append(n.Children, c)
			return nil
		case "Sizes":
			var text string
			if err := r.dec.DecodeElement(&text, &child); err != nil {
				return malformed("%v", err)
			}
			sizes, err := parseSizes(text)
			if err != nil {
				return err
			}
			n.Sizes = sizes
			sizesSeen = true
			return nil
		}
		return r.skip()
	})
	if err != nil {
		return nil, err
	}
	if len(n.Children) != count {
		return nil, malformed("splitter declares %d children, has %d", count, len(n.Children))
	}
	if sizesSeen && len(n.Sizes) != count {
		return nil, malformed("splitter has %d sizes for %d children", len(n.Sizes), count)
	}
	return n, nil
}

func parseSizes(text string) ([]int, error) {
	fields := strings.Fields(text)
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, malformed("invalid splitter size %q", f)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

func (r *reader) area(se xml.StartElement) (*Area, error) {
	a := &Area{AllowedAreas: entity.AllDockAreas, Flags: entity.DefaultDockAreaFlags}
	a.CurrentDockWidget, _ = attrValue(se, "CurrentDockWidget", "Current")
	if v, ok := attrValue(se, "AllowedAreas"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 16, 32)
		if err != nil {
			return nil, malformed("invalid AllowedAreas %q", v)
		}
		a.AllowedAreas = entity.DockWidgetArea(n)
	}
	if v, ok := attrValue(se, "Flags"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 16, 32)
		if err != nil {
			return nil, malformed("invalid area Flags %q", v)
		}
		a.Flags = entity.DockAreaFlag(n)
	}

	err := r.children(func(child xml.StartElement) error {
		if child.Name.Local != "Widget" {
			return r.skip()
		}
		name, _ := attrValue(child, "Name")
		if name == "" {
			return malformed("area widget without Name")
		}
		a.Widgets = append(a.Widgets, Widget{Name: name, Closed: boolAttrValue(child, "Closed")})
		return r.skip()
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *reader) sideBar(se xml.StartElement) (*SideBar, error) {
	loc, ok, err := intAttrValue(se, "Area")
	if err != nil {
		return nil, err
	}
	if !ok || !entity.SideBarLocation(loc).Valid() {
		return nil, malformed("invalid sidebar location")
	}
	sb := &SideBar{Location: entity.SideBarLocation(loc)}
	err = r.children(func(child xml.StartElement) error {
		if child.Name.Local != "Widget" {
			return r.skip()
		}
		name, _ := attrValue(child, "Name")
		if name == "" {
			return malformed("sidebar widget without Name")
		}
		size, _, err := intAttrValue(child, "Size")
		if err != nil {
			return err
		}
		sb.Widgets = append(sb.Widgets, SideBarWidget{
			Name:   name,
			Closed: boolAttrValue(child, "Closed"),
			Size:   size,
		})
		return r.skip()
	})
	if err != nil {
		return nil, err
	}
	return sb, nil
}
