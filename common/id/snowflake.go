package id

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// The API server uses node 1, the worker node 2 and the CLI node 3.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered int64 ID.
func New() int64 {
	return node.Generate().Int64()
}

// NewString returns a new ID in its decimal string form. Content sections are keyed by
// string ids because the editor creates them before they ever reach the database.
func NewString() string {
	return strconv.FormatInt(New(), 10)
}
