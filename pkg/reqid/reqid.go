// Package reqid generates and validates request correlation ids. Generated
// ids are ULIDs, so they sort by creation time.
package reqid

import (
	"crypto/rand"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

// MaxLen bounds the length of a caller-supplied id.
const MaxLen = 128

var ErrInvalid = errors.New("reqid: invalid request id")

type ID string

var (
	once    sync.Once
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
)

// New returns a ULID for the current time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a ULID carrying t as its timestamp. Ids minted within the same
// millisecond are strictly increasing.
func NewAt(t time.Time) ID {
	once.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})

	mu.Lock()
	defer mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse accepts any caller-supplied id made of printable ASCII without
// spaces, at most MaxLen bytes long.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxLen {
		return "", ErrInvalid
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return "", ErrInvalid
		}
	}
	return ID(s), nil
}

// FromRequest returns the id sent in the Header of r, or a fresh one when the
// header is missing or unusable.
func FromRequest(r *http.Request) ID {
	if id, err := Parse(r.Header.Get(Header)); err == nil {
		return id
	}
	return New()
}

func (id ID) String() string { return string(id) }

// Time extracts the timestamp of a generated id. Ids that are not ULIDs
// return the zero time.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
