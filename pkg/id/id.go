// Package id generates prefixed, lexicographically sortable entity ids.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entity prefixes. An id reads as <prefix>_<ULID>, e.g. prj_01J8ZK....
const (
	User           = "usr"
	Project        = "prj"
	Investment     = "inv"
	Wallet         = "wlt"
	Transaction    = "txn"
	Notification   = "ntf"
	Conversation   = "cnv"
	Message        = "msg"
	Service        = "svc"
	ServiceRequest = "srq"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh prefixed ULID. Ids generated in the same process are
// strictly increasing, so creation order is recoverable from the id alone.
func New(prefix string) string {
	mu.Lock()
	defer mu.Unlock()
	return prefix + "_" + ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
