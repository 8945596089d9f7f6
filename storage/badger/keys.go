package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/amharies/BIONARY--CHATBOT/core"
)

// Key prefixes for different data types
const (
	eventRecordPrefix = "evtrec"
	eventNamePrefix   = "evtname"
	queryLogPrefix    = "qlog"
	queryLogIDSeq     = "qlogseq"
)

// makeEventKey generates a key for an event record by ID.
func makeEventKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", eventRecordPrefix, id))
}

// makeEventNameKey generates a key for the normalized-name index.
func makeEventNameKey(normalizedName string) []byte {
	return []byte(eventNamePrefix + ":" + normalizedName)
}

// makeQueryLogKey generates a composite key for a log entry.
// Format: prefix:timestamp:id, with fixed-width BigEndian fields so
// lexicographic iteration follows time order.
func makeQueryLogKey(askedAt time.Time, id core.ID) []byte {
	prefix := queryLogPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(askedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialQueryLogKey generates a partial key for seeking in the log.
// Format: prefix:timestamp
func makePartialQueryLogKey(askedAt time.Time) []byte {
	prefix := queryLogPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(askedAt.UnixMicro()))
	return buf
}
