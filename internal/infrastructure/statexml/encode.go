package statexml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/dockit/internal/domain/entity"
)

// EncodeOptions controls the byte layout of an encoded document.
type EncodeOptions struct {
	// AutoFormat indents the XML with one space per level.
	AutoFormat bool
	// Compress wraps the XML with Compress.
	Compress bool
}

// Encode serializes doc. Identical documents always produce identical bytes.
func Encode(doc *Document, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if opts.AutoFormat {
		enc.Indent("", " ")
	}
	w := &writer{enc: enc}
	w.document(doc)
	if w.err == nil {
		w.err = enc.Flush()
	}
	if w.err != nil {
		return nil, fmt.Errorf("encode layout state: %w", w.err)
	}
	if opts.AutoFormat {
		buf.WriteByte('\n')
	}

	if !opts.Compress {
		return buf.Bytes(), nil
	}
	return Compress(buf.Bytes())
}

// writer keeps the first encoding error and ignores later calls.
type writer struct {
	enc *xml.Encoder
	err error
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func boolAttr(name string, v bool) xml.Attr {
	if v {
		return attr(name, "1")
	}
	return attr(name, "0")
}

func intAttr(name string, v int) xml.Attr {
	return attr(name, strconv.Itoa(v))
}

func (w *writer) start(name string, attrs ...xml.Attr) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (w *writer) end(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func (w *writer) text(s string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.CharData(s))
}

func (w *writer) document(doc *Document) {
	version := doc.Version
	if version == 0 {
		version = CurrentVersion
	}
	attrs := []xml.Attr{
		intAttr("Version", version),
		intAttr("UserVersion", doc.UserVersion),
		intAttr("Containers", len(doc.Containers)),
	}
	if doc.CentralWidget != "" {
		attrs = append(attrs, attr("CentralWidget", doc.CentralWidget))
	}
	w.start(RootElement, attrs...)
	for _, c := range doc.Containers {
		w.container(c)
	}
	w.end(RootElement)
}

func (w *writer) container(c *Container) {
	w.start("Container", boolAttr("Floating", c.Floating))
	if g := c.Geometry; g != nil {
		w.start("Geometry",
			intAttr("X", g.X),
			intAttr("Y", g.Y),
			intAttr("Width", g.Width),
			intAttr("Height", g.Height),
			attr("State", g.State.String()),
		)
		w.end("Geometry")
	}
	if c.Root != nil {
		w.node(c.Root)
	}
	for _, sb := range c.SideBars {
		if len(sb.Widgets) == 0 {
			continue
		}
		w.sideBar(sb)
	}
	w.end("Container")
}

func (w *writer) node(n *Node) {
	if n.Area != nil {
		w.area(n.Area)
		return
	}
	w.start("Splitter", attr("Orientation", orientationToken(n.Orientation)), intAttr("Count", len(n.Children)))
	for _, child := range n.Children {
		w.node(child)
	}
	sizes := make([]string, len(n.Children))
	for i := range n.Children {
		v := entity.DefaultSplitterWeight
		if i < len(n.Sizes) {
			v = n.Sizes[i]
		}
		sizes[i] = strconv.Itoa(v)
	}
	w.start("Sizes")
	w.text(strings.Join(sizes, " "))
	w.end("Sizes")
	w.end("Splitter")
}

func (w *writer) area(a *Area) {
	attrs := []xml.Attr{
		intAttr("Tabs", len(a.Widgets)),
		attr("CurrentDockWidget", a.CurrentDockWidget),
	}
	if a.AllowedAreas != entity.AllDockAreas && a.AllowedAreas != entity.NoDockWidgetArea {
		attrs = append(attrs, attr("AllowedAreas", strconv.FormatInt(int64(a.AllowedAreas), 16)))
	}
	if a.Flags != entity.DefaultDockAreaFlags {
		attrs = append(attrs, attr("Flags", strconv.FormatUint(uint64(a.Flags), 16)))
	}
	w.start("Area", attrs...)
	for _, wd := range a.Widgets {
		w.start("Widget", attr("Name", wd.Name), boolAttr("Closed", wd.Closed))
		w.end("Widget")
	}
	w.end("Area")
}

func (w *writer) sideBar(sb *SideBar) {
	w.start("SideBar", intAttr("Area", int(sb.Location)), intAttr("Tabs", len(sb.Widgets)))
	for _, wd := range sb.Widgets {
		w.start("Widget", attr("Name", wd.Name), boolAttr("Closed", wd.Closed), intAttr("Size", wd.Size))
		w.end("Widget")
	}
	w.end("SideBar")
}

func orientationToken(o entity.Orientation) string {
	if o == entity.Vertical {
		return "-"
	}
	return "|"
}
