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

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestRender_Textual(t *testing.T) {
	data, err := New().Render(sampleTree(), output.RenderOptions{IncludeIcons: true})
	require.NoError(t, err)

	want := "# Links Folder\n\n" +
		"- [🐙 GitHub](https://github.com)\n" +
		"- **📚 Docs**\n" +
		"  - [Go \\[spec\\]](https://go.dev/ref/spec)\n"
	assert.Equal(t, want, string(data))
}

func TestRender_Table(t *testing.T) {
	data, err := New().Render(sampleTree(), output.RenderOptions{Style: string(StyleTable), Title: "Mine"})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# Mine\n")
	assert.Contains(t, out, "| [GitHub](https://github.com) |  | Safari |\n")
	assert.Contains(t, out, "| [Go \\[spec\\]](https://go.dev/ref/spec) | Docs |  |\n")
}

func TestRender_YAML(t *testing.T) {
	data, err := New().Render(sampleTree(), output.RenderOptions{Style: string(StyleYAML), IncludeMetadata: true})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "*Total: 2 links in 1 folders*")
	assert.Contains(t, out, "```yaml\nitems:\n")
	assert.Contains(t, out, "url: https://github.com")
}
