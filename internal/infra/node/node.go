package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Node describes the running dashboard process as reported by /healthz.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

// Set at build time through -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	current     *Node
	currentOnce sync.Once
)

// GetNodeInfo returns the process-wide node description. The ID and start
// time are fixed on first use.
func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		current = &Node{
			ID:        uuid.New().String(),
			Hostname:  hostname(),
			StartedAt: time.Now(),
		}
	})

	info := *current
	info.Version = Version
	info.CommitHash = CommitHash
	return &info
}

func (n *Node) Uptime() time.Duration {
	return time.Since(n.StartedAt).Truncate(time.Second)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}
