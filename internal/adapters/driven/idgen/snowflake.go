package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"

	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.IDGenerator = (*Snowflake)(nil)

// Snowflake generates time-ordered, globally unique IDs.
// Each replica needs its own node ID (0-1023).
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator for the given node ID
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// NewID returns the next ID in decimal form
func (s *Snowflake) NewID() string {
	return s.node.Generate().String()
}
