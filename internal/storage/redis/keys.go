package redis

import (
	"fmt"

	"github.com/jpmeyers/santaswap/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "santaswap"

// gameKey returns the Redis key for a game record
func gameKey(code model.GameCode) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, code)
}
