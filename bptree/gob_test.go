package bptree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGobRoundTripPreservesGetAllAndInvariants(t *testing.T) {
	tr, err := New[int, string](3)
	require.NoError(t, err)
	for i := 1; i <= 25; i++ {
		tr.Insert(i, fmt.Sprintf("v%d", i))
	}
	tr.Delete(5)
	tr.Delete(6)
	tr.Delete(7)

	before := tr.GetAll()

	data, err := tr.GobEncode()
	require.NoError(t, err)

	restored := &Tree[int, string]{}
	require.NoError(t, restored.GobDecode(data))

	after := restored.GetAll()
	require.Equal(t, before, after)
	assertInvariants(t, restored)

	v, ok := restored.Search(10)
	require.True(t, ok)
	assert.Equal(t, "v10", v)
}

func TestGobRoundTripEmptyTree(t *testing.T) {
	tr, err := New[int, string](4)
	require.NoError(t, err)

	data, err := tr.GobEncode()
	require.NoError(t, err)

	restored := &Tree[int, string]{}
	require.NoError(t, restored.GobDecode(data))
	assert.Empty(t, restored.GetAll())
	assert.Equal(t, 4, restored.order)
}
