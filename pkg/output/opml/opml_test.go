// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package opml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importer "github.com/francescopioparadiso/Links-Folder/pkg/input/opml"
	"github.com/francescopioparadiso/Links-Folder/pkg/item"
	"github.com/francescopioparadiso/Links-Folder/pkg/output"
)

func sampleTree() item.Tree {
	docs := item.NewFolder("Docs", "📚")
	docs.Items = []item.Item{
		item.NewLink("Go [spec]", "https://go.dev/ref/spec", "", nil),
	}
	return item.Tree{Items: []item.Item{
		item.NewLink("GitHub", "https://github.com", "🐙", &item.SavedApp{Name: "Safari", Path: "/Applications/Safari.app"}),
		docs,
	}}
}

// titlesOf flattens titles and urls for order comparisons.
func titlesOf(items []item.Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Title+"|"+it.URL)
		out = append(out, titlesOf(it.Items)...)
	}
	return out
}

func TestOPML_RoundTripsThroughImporter(t *testing.T) {
	tree := sampleTree()

	data, err := (&OPMLAdapter{}).Render(tree, output.RenderOptions{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))

	items, err := importer.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, titlesOf(tree.Items), titlesOf(items))
}

func TestHTML_RoundTripsThroughImporter(t *testing.T) {
	tree := sampleTree()

	data, err := (&HTMLAdapter{}).Render(tree, output.RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `<DT><A HREF="https://github.com">GitHub</A>`)

	items, err := importer.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, titlesOf(tree.Items), titlesOf(items))
}

func TestHTML_EscapesTitles(t *testing.T) {
	tree := item.Tree{Items: []item.Item{item.NewLink("A & B <c>", "https://x.test/?a=1&b=2", "", nil)}}

	data, err := (&HTMLAdapter{}).Render(tree, output.RenderOptions{Title: "Mine"})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<H1>Mine</H1>")
	assert.Contains(t, out, "A &amp; B &lt;c&gt;")
	assert.Contains(t, out, "a=1&amp;b=2")
}
