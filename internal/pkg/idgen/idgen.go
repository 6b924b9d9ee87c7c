// Package idgen issues verification request ids that embed their issuance time.
package idgen

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

const RequestIDPrefix = "req_"

type Generator interface {
	NewRequestID() string
}

type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NewRequestID() string {
	return RequestIDPrefix + g.node.Generate().String()
}

// TimeOf recovers the issuance time from an id produced by SnowflakeGenerator.
// Ids from other sources (e.g. created by the reconciliation callback) report false.
func TimeOf(requestID string) (time.Time, bool) {
	raw, ok := strings.CutPrefix(requestID, RequestIDPrefix)
	if !ok {
		return time.Time{}, false
	}
	id, err := snowflake.ParseString(raw)
	if err != nil || id <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(id.Time()).UTC(), true
}
