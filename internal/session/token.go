package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenPrefix marks tokens minted by this service. The token is an opaque
// partition key for cart entries, not a security boundary; it is never
// validated server-side.
const TokenPrefix = "session_"

const randomSuffixLen = 9

// Mint returns a fresh session token. Collision resistance across devices is
// not required; the token only needs to be practically unique per browser.
func Mint() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomSuffixLen]
	return fmt.Sprintf("%s%d_%s", TokenPrefix, time.Now().UnixMilli(), suffix)
}
