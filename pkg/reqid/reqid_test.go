package reqid_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iftm/clients/pkg/reqid"
	"github.com/stretchr/testify/require"
)

func TestNewIsParseable(t *testing.T) {
	id := reqid.New()
	require.Len(t, id.String(), 26)

	parsed, err := reqid.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestOrdering(t *testing.T) {
	a := reqid.NewAt(time.Unix(1, 0).UTC())
	b := reqid.NewAt(time.Unix(2, 0).UTC())
	require.Less(t, a.String(), b.String())

	// same millisecond still increases
	c := reqid.NewAt(time.Unix(2, 0).UTC())
	require.Less(t, b.String(), c.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	require.WithinDuration(t, tm, reqid.NewAt(tm).Time(), time.Millisecond)
	require.True(t, reqid.ID("not-a-ulid").Time().IsZero())
}

func TestParse(t *testing.T) {
	t.Run("accepts opaque ids", func(t *testing.T) {
		id, err := reqid.Parse(" abc-123 ")
		require.NoError(t, err)
		require.Equal(t, reqid.ID("abc-123"), id)
	})

	t.Run("rejects empty, long and control characters", func(t *testing.T) {
		for _, s := range []string{"", "   ", strings.Repeat("a", reqid.MaxLen+1), "a b", "a\nb"} {
			_, err := reqid.Parse(s)
			require.ErrorIs(t, err, reqid.ErrInvalid, "input %q", s)
		}
	})
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/clients", nil)
	r.Header.Set(reqid.Header, "caller-id")
	require.Equal(t, reqid.ID("caller-id"), reqid.FromRequest(r))

	r.Header.Set(reqid.Header, "bad id")
	generated := reqid.FromRequest(r)
	require.NotEqual(t, reqid.ID("bad id"), generated)
	require.False(t, generated.Time().IsZero())
}
