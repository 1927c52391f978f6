// Copyright © 2025 The pyvet authors

package syntax

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_JSONRoundTrip(t *testing.T) {
	for kind, name := range kindNames {
		data, err := json.Marshal(kind)
		require.NoError(t, err)
		assert.Equal(t, `"`+name+`"`, string(data))

		var decoded Kind
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, kind, decoded)
	}
}

func TestKind_UnmarshalUnknownTag(t *testing.T) {
	// A newer front end may emit kinds this version does not know.
	var k Kind
	require.NoError(t, json.Unmarshal([]byte(`"match"`), &k))
	assert.Equal(t, KindUnknown, k)
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "3:7", Position{Line: 3, Col: 7}.String())
	assert.Equal(t, "3", Position{Line: 3}.String())
}

func TestRange_Contains(t *testing.T) {
	stmt := Range{Start: Position{Line: 1, Col: 1}, End: Position{Line: 3, Col: 10}}
	header := Range{Start: Position{Line: 1, Col: 1}, End: Position{Line: 1, Col: 15}}
	assert.True(t, stmt.Contains(header))
	assert.True(t, stmt.Contains(stmt))

	outside := Range{Start: Position{Line: 4, Col: 1}, End: Position{Line: 4, Col: 5}}
	assert.False(t, stmt.Contains(outside))
	assert.False(t, stmt.Contains(Range{}))
}

func TestNode_HeaderRange(t *testing.T) {
	full := Range{Start: Position{Line: 2, Col: 1}, End: Position{Line: 5, Col: 8}}
	header := Range{Start: Position{Line: 2, Col: 1}, End: Position{Line: 2, Col: 12}}

	n := &Node{Kind: KindWhile, Range: full, Header: header}
	assert.Equal(t, header, n.HeaderRange())

	n = &Node{Kind: KindWhile, Range: full}
	assert.Equal(t, full, n.HeaderRange())
}

func TestAlias_LocalName(t *testing.T) {
	assert.Equal(t, "pd", Alias{Name: "pandas", AsName: "pd"}.LocalName())
	assert.Equal(t, "pandas", Alias{Name: "pandas"}.LocalName())
}
