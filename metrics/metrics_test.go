package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordListFetch(t *testing.T) {
	before := testutil.ToFloat64(ListFetchTotal.WithLabelValues("articles", OutcomeFailure))

	RecordListFetch("articles", time.Now(), errors.New("boom"))

	after := testutil.ToFloat64(ListFetchTotal.WithLabelValues("articles", OutcomeFailure))
	assert.Equal(t, before+1, after)
}

func TestRecordIntent(t *testing.T) {
	before := testutil.ToFloat64(IntentsTotal.WithLabelValues("users", "delete", OutcomeSuccess))

	RecordIntent("users", "delete", nil)

	after := testutil.ToFloat64(IntentsTotal.WithLabelValues("users", "delete", OutcomeSuccess))
	assert.Equal(t, before+1, after)
}

func TestHandlerExposesCounters(t *testing.T) {
	RecordIntent("articles", "change_status", nil)
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "admin_intents_total")
}
