package utils

import (
	"github.com/google/uuid"
	"strconv"
	"sync/atomic"
	"time"
)

// IDGenerator returns a new identity token on every call.
type IDGenerator func() string

// counter is appended to every UID. It is never reset.
var counter atomic.Uint64

// UID returns the current Unix time in milliseconds followed by an in-process counter, both base-36 encoded.
//
// UIDs are unique within the process as long as the counter does not wrap.
// They are not unique across processes: two processes started within the same millisecond yield the same sequence.
func UID() string {
	n := counter.Add(1) - 1

	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(n, 36)
}

// UUID returns a random (version 4) UUID in its canonical string form.
func UUID() string {
	return uuid.NewString()
}

// Assert interface compliance.
var (
	_ IDGenerator = UID
	_ IDGenerator = UUID
)
