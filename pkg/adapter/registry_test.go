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

package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francescopioparadiso/Links-Folder/pkg/adapter"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/input/opml"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/output/json"
	_ "github.com/francescopioparadiso/Links-Folder/pkg/output/opml"
)

func TestRegistry_Outputs(t *testing.T) {
	names := adapter.ListOutputs()
	assert.Equal(t, []string{"html", "json", "opml"}, names)

	a, ok := adapter.GetOutput("json")
	require.True(t, ok)
	assert.Equal(t, "JSON", a.DisplayName())

	all := adapter.AllOutputs()
	require.Len(t, all, 3)
	assert.Equal(t, "html", all[0].Name())

	_, ok = adapter.GetOutput("pdf")
	assert.False(t, ok)
}

func TestRegistry_Inputs(t *testing.T) {
	assert.Equal(t, []string{"opml"}, adapter.ListInputs())

	a, ok := adapter.GetInput("opml")
	require.True(t, ok)
	assert.False(t, a.Available())
	assert.Empty(t, adapter.AvailableInputs())
}
