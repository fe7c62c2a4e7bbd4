package requests

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 9

// suffixSpace is 36^9, the number of distinct base36 suffixes.
const suffixSpace = 101559956668416

// NewRequestID returns an identifier of the form REQ-<unix millis>-<9 base36 chars>.
func NewRequestID(now time.Time) string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8]) % suffixSpace
	suffix := strconv.FormatUint(n, 36)
	if len(suffix) < suffixLen {
		suffix = strings.Repeat("0", suffixLen-len(suffix)) + suffix
	}
	return fmt.Sprintf("REQ-%d-%s", now.UnixMilli(), suffix)
}
