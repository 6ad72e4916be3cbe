package osm

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubClientFetchNode(t *testing.T) {
	client := NewStubClient(zerolog.Nop())

	node, err := client.FetchNode(context.Background(), 5589879349)
	require.NoError(t, err)
	assert.Equal(t, int64(5589879349), node.NodeID)
	assert.NotEmpty(t, node.Name)
	assert.NotEmpty(t, node.Street)
	assert.NotEmpty(t, node.HouseNumber)

	_, err = client.FetchNode(context.Background(), 42)
	var nf NodeNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(42), nf.NodeID)
}
