package osm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Node is an OpenStreetMap node carrying the tags needed to build a point of
// sale from it.
type Node struct {
	NodeID      int64
	Name        string
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
}

// NodeNotFoundError reports an OSM node ID the source does not know.
type NodeNotFoundError struct {
	NodeID int64
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("osm node %d not found", e.NodeID)
}

// NodeFetcher is the port through which node data is imported.
type NodeFetcher interface {
	FetchNode(ctx context.Context, nodeID int64) (Node, error)
}

// StubClient serves a single hardcoded node.
//
// TODO: replace with an HTTP client against
// https://www.openstreetmap.org/api/0.6/node/{id} once real tag extraction
// lands.
type StubClient struct {
	log zerolog.Logger
}

// NewStubClient creates the stub OSM client.
func NewStubClient(log zerolog.Logger) *StubClient {
	return &StubClient{log: log}
}

const stubNodeID int64 = 5589879349

// FetchNode returns the hardcoded node for the one known ID and
// NodeNotFoundError for every other ID.
func (c *StubClient) FetchNode(_ context.Context, nodeID int64) (Node, error) {
	c.log.Warn().Int64("node_id", nodeID).Msg("using stub OSM client, returning hardcoded data")

	if nodeID != stubNodeID {
		return Node{}, NodeNotFoundError{NodeID: nodeID}
	}

	return Node{
		NodeID:      stubNodeID,
		Name:        "Café Botanik",
		Street:      "Im Neuenheimer Feld",
		HouseNumber: "304",
		PostalCode:  "69120",
		City:        "Heidelberg",
	}, nil
}
