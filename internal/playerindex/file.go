package playerindex

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileSource serves the index from a JSON array of player records on disk.
type FileSource struct {
	Path string
}

// PlayerIndex reads and decodes the file on every call.
func (f FileSource) PlayerIndex(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(f.Path)
}

// LoadFile decodes a player index file.
func LoadFile(path string) ([]players.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read player index: %w", err)
	}
	var list []players.Player
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode player index %s: %w", path, err)
	}
	return list, nil
}
