package naming

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"time"
)

const compactIDLength = 12

// NewCompactID returns a time-ordered compact ID (12 chars, base36), optionally
// prefixed as "<prefix>-<id>". Journal records use it so that listings sort by
// creation time without an extra column.
// Format: 7-char timestamp (base36) + 5-char random (base36), lowercase only.
func NewCompactID(prefix string) (string, error) {
	id, err := compactID(time.Now().UTC())
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "-" + id, nil
}

func compactID(now time.Time) (string, error) {
	timestamp := now.Unix()
	// 36^7 covers timestamps until year ~4454.
	if timestamp < 0 {
		return "", fmt.Errorf("negative timestamp not supported")
	}
	if timestamp >= 78364164096 {
		return "", fmt.Errorf("timestamp too large for 7-char base36 encoding")
	}
	timeStr := fmt.Sprintf("%07s", strconv.FormatInt(timestamp, 36))

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	var randomInt uint64
	for _, b := range randomBytes {
		randomInt = randomInt<<8 | uint64(b)
	}
	randomInt %= 36 * 36 * 36 * 36 * 36
	randomStr := fmt.Sprintf("%05s", strconv.FormatUint(randomInt, 36))

	return timeStr + randomStr, nil
}
