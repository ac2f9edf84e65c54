package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lepinkainen/storeview/internal/display"
	"github.com/lepinkainen/storeview/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *service.Result {
	return &service.Result{
		AppID: 10,
		Name:  "Portal",
		Items: []display.Item{
			display.Heading("<h1>Portal &amp; Friends</h1>"),
			display.HTMLText("Intro<br/>\nline"),
			display.Image("https://cdn.test/a.jpg"),
			display.HTMLText(`<img src="https://icons.test/ico_coop.png" style="width: 26px; height: 16px;">`),
			display.HTMLText(""),
			display.Spacer(),
			display.Footer("&copy; Valve"),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "markdown", want: FormatMarkdown},
		{in: "md", want: FormatMarkdown},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, "txt", FormatText.Extension())
	assert.Equal(t, "md", FormatMarkdown.Extension())
	assert.Equal(t, "json", FormatJSON.Extension())
	assert.Equal(t, "yaml", FormatYAML.Extension())
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("xml"), []*service.Result{sampleResult()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
	assert.Zero(t, buf.Len())
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, []*service.Result{sampleResult()}))

	expected := `---
app_id: 10
name: Portal
url: https://store.steampowered.com/app/10
---

# Portal &amp; Friends

Intro<br/>
line

![](https://cdn.test/a.jpg)

<img src="https://icons.test/ico_coop.png" style="width: 26px; height: 16px;">

<small>&copy; Valve</small>
`
	assert.Equal(t, expected, buf.String())
}

func TestRenderMarkdownMultipleDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, []*service.Result{sampleResult(), sampleResult()}))

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n# Portal")))
	assert.Contains(t, buf.String(), "</small>\n\n---\napp_id: 10\n")
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, []*service.Result{sampleResult()}))

	out := buf.String()
	assert.Contains(t, out, "Portal & Friends")
	assert.Contains(t, out, "Intro\nline\n")
	assert.Contains(t, out, "[image] https://cdn.test/a.jpg")
	assert.Contains(t, out, "[coop]")
	assert.Contains(t, out, "© Valve")
	assert.NotContains(t, out, "<br")
	assert.NotContains(t, out, "&amp;")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, []*service.Result{sampleResult()}))

	var decoded []service.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, sampleResult().Items, decoded[0].Items)
	assert.Contains(t, buf.String(), `"content": "<h1>Portal &amp; Friends</h1>"`, "HTML must not be re-escaped")
}

func TestRenderJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, []*service.Result{sampleResult()}))

	var decoded []service.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, 10, decoded[0].AppID)
	assert.Equal(t, sampleResult().Items, decoded[0].Items)
	assert.Contains(t, buf.String(), "app_id: 10")
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "entities", in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "breaks", in: "a<br/>\nb<BR>c", want: "a\nb\nc"},
		{name: "lists", in: "<ul><li>one</li><li>two</li></ul>", want: "- one\n- two"},
		{name: "icons", in: `<img src="x/ico_vr_support.png"><img src="x/ico_coop.png?v=2">`, want: "[vr_support] [coop]"},
		{name: "collapses blank runs", in: "<p>a</p><p></p><p></p><p>b</p>", want: "a\n\nb"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plainText(tt.in))
		})
	}
}
