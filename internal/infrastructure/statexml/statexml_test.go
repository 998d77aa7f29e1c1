package statexml

import (
	"bytes"
	"testing"

	"github.com/bnema/dockit/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Version:        CurrentVersion,
		UserVersion:    3,
		HasUserVersion: true,
		CentralWidget:  "editor",
		Containers: []*Container{
			{
				Root: &Node{
					Orientation: entity.Horizontal,
					Sizes:       []int{250, 750},
					Children: []*Node{
						{Area: &Area{
							CurrentDockWidget: "files",
							AllowedAreas:      entity.AllDockAreas,
							Widgets:           []Widget{{Name: "files"}, {Name: "search", Closed: true}},
						}},
						{
							Orientation: entity.Vertical,
							Sizes:       []int{600, 200},
							Children: []*Node{
								{Area: &Area{
									CurrentDockWidget: "editor",
									AllowedAreas:      entity.OuterDockAreas,
									Flags:             entity.HideSingleWidgetTitleBar,
									Widgets:           []Widget{{Name: "editor"}},
								}},
								{Area: &Area{
									CurrentDockWidget: "log",
									AllowedAreas:      entity.AllDockAreas,
									Widgets:           []Widget{{Name: "log"}},
								}},
							},
						},
					},
				},
				SideBars: []*SideBar{
					{Location: entity.SideBarLeft, Widgets: []SideBarWidget{{Name: "outline", Size: 480}}},
				},
			},
			{
				Floating: true,
				Geometry: &Geometry{X: 10, Y: 20, Width: 400, Height: 300, State: entity.WindowNormal},
				Root: &Node{Area: &Area{
					CurrentDockWidget: "props",
					AllowedAreas:      entity.AllDockAreas,
					Widgets:           []Widget{{Name: "props"}},
				}},
			},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, opts := range []EncodeOptions{
		{},
		{AutoFormat: true},
		{Compress: true},
		{AutoFormat: true, Compress: true},
	} {
		data, err := Encode(sampleDocument(), opts)
		require.NoError(t, err)
		assert.Equal(t, opts.Compress, IsCompressed(data))

		doc, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, sampleDocument(), doc)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(sampleDocument(), EncodeOptions{Compress: true})
	require.NoError(t, err)
	b, err := Encode(sampleDocument(), EncodeOptions{Compress: true})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_Attributes(t *testing.T) {
	data, err := Encode(sampleDocument(), EncodeOptions{})
	require.NoError(t, err)
	s := string(data)

	assert.True(t, bytes.HasPrefix(data, []byte(`<?xml version="1.0" encoding="UTF-8"?>`)))
	assert.Contains(t, s, `<QtAdvancedDockingSystem Version="1" UserVersion="3" Containers="2" CentralWidget="editor">`)
	assert.Contains(t, s, `<Splitter Orientation="|" Count="2">`)
	assert.Contains(t, s, `<Sizes>250 750</Sizes>`)
	assert.Contains(t, s, `<Area Tabs="1" CurrentDockWidget="editor" AllowedAreas="f" Flags="1">`)
	assert.Contains(t, s, `<Widget Name="search" Closed="1"></Widget>`)
	assert.Contains(t, s, `<SideBar Area="1" Tabs="1"><Widget Name="outline" Closed="0" Size="480"></Widget></SideBar>`)
	assert.Contains(t, s, `<Container Floating="1"><Geometry X="10" Y="20" Width="400" Height="300" State="normal"></Geometry>`)
}

func TestEncode_EmptyDocument(t *testing.T) {
	data, err := Encode(&Document{}, EncodeOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `Containers="0"`)

	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Containers)
	assert.Equal(t, CurrentVersion, doc.Version)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "empty", data: "", want: ErrEmptyState},
		{name: "wrong root", data: `<?xml version="1.0"?><Layout Version="1"/>`, want: ErrInvalidRootElement},
		{name: "missing version", data: `<?xml version="1.0"?><QtAdvancedDockingSystem/>`, want: ErrMalformedState},
		{
			name: "bad orientation",
			data: `<?xml version="1.0"?><QtAdvancedDockingSystem Version="1"><Container Floating="0">` +
				`<Splitter Orientation="x" Count="0"></Splitter></Container></QtAdvancedDockingSystem>`,
			want: ErrMalformedState,
		},
		{
			name: "size count mismatch",
			data: `<?xml version="1.0"?><QtAdvancedDockingSystem Version="1"><Container Floating="0">` +
				`<Splitter Orientation="-" Count="1"><Area Tabs="1" Current="a"><Widget Name="a" Closed="0"/></Area>` +
				`<Sizes>1 2</Sizes></Splitter></Container></QtAdvancedDockingSystem>`,
			want: ErrMalformedState,
		},
		{name: "truncated", data: `<?xml version="1.0"?><QtAdvancedDockingSystem Version="1"><Container>`, want: ErrMalformedState},
		{name: "garbage", data: "\x00\x00\x00\x05garbage", want: ErrDecompress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_AcceptsLegacyAttributes(t *testing.T) {
	data := `<?xml version="1.0"?><QtAdvancedDockingSystem Version="1"><Container Floating="0">` +
		`<Splitter Orientation="vertical" Count="1"><Area Tabs="1" Current="a"><Widget Name="a" Closed="0"/></Area>` +
		`</Splitter></Container></QtAdvancedDockingSystem>`

	doc, err := Decode([]byte(data))

	require.NoError(t, err)
	assert.False(t, doc.HasUserVersion)
	root := doc.Containers[0].Root
	assert.Equal(t, entity.Vertical, root.Orientation)
	assert.Nil(t, root.Sizes)
	assert.Equal(t, "a", root.Children[0].Area.CurrentDockWidget)
	assert.Equal(t, []string{"a"}, doc.WidgetNames())
}

func TestDocument_CheckHeader(t *testing.T) {
	doc := sampleDocument()

	assert.NoError(t, doc.CheckHeader(Expectations{UserVersion: 3, CentralWidget: "editor"}))
	assert.ErrorIs(t, doc.CheckHeader(Expectations{UserVersion: 4}), ErrUserVersionMismatch)
	assert.ErrorIs(t, doc.CheckHeader(Expectations{UserVersion: 3, CentralWidget: "other"}), ErrCentralWidgetMismatch)
	assert.NoError(t, doc.CheckHeader(Expectations{UserVersion: 3, CentralWidget: "other", IgnoreCentralWidget: true}))

	doc.CentralWidget = ""
	assert.ErrorIs(t, doc.CheckHeader(Expectations{UserVersion: 3, CentralWidget: "editor"}), ErrCentralWidgetMissing)

	doc.Version = CurrentVersion + 1
	assert.ErrorIs(t, doc.CheckHeader(Expectations{UserVersion: 3}), ErrVersionTooNew)
}

func TestCompress_QtLayout(t *testing.T) {
	data, err := Compress([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 5}, data[:4])

	plain, err := Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(plain))
}

func TestDecode_LeadingWhitespaceAndBOM(t *testing.T) {
	data, err := Encode(sampleDocument(), EncodeOptions{})
	require.NoError(t, err)

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "newline", prefix: "\n"},
		{name: "spaces and tabs", prefix: "  \t"},
		{name: "byte order mark", prefix: "\xef\xbb\xbf"},
		{name: "whitespace around bom", prefix: "\r\n\xef\xbb\xbf "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := append([]byte(tt.prefix), data...)
			assert.False(t, IsCompressed(payload))

			doc, err := Decode(payload)
			require.NoError(t, err)
			assert.Equal(t, sampleDocument(), doc)
		})
	}
}
