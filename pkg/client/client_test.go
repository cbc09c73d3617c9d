package client

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/schmitt/pkg/design"
	"github.com/charlie0129/schmitt/pkg/events"
	"github.com/charlie0129/schmitt/pkg/spec"
	"github.com/charlie0129/schmitt/pkg/utils/ptr"
)

// serveUnix serves router on a unix socket in a short temp dir and returns
// the socket path.
func serveUnix(t *testing.T, router http.Handler) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "schmitt")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	socket := filepath.Join(dir, "d.sock")
	l, err := net.Listen("unix", socket)
	require.NoError(t, err)

	srv := &http.Server{Handler: router}
	go func() { _ = srv.Serve(l) }()
	t.Cleanup(func() { _ = srv.Close() })

	return socket
}

func fakeDaemon() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.POST("/design", func(c *gin.Context) {
		var req design.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.IndentedJSON(http.StatusBadRequest, err.Error())
			return
		}
		s, opts := req.Resolve(spec.Spec{VCC: 5, LowTarget: 0.555, HighTarget: 0.575, TolerancePercent: 1}, design.DefaultOptions())
		report, err := design.Run(s, opts)
		if ve, ok := spec.AsValidationError(err); ok {
			c.IndentedJSON(http.StatusUnprocessableEntity, ve)
			return
		}
		c.IndentedJSON(http.StatusOK, report)
	})
	r.GET("/series", func(c *gin.Context) {
		c.IndentedJSON(http.StatusOK, []float64{100, 110})
	})
	r.GET("/version", func(c *gin.Context) {
		c.IndentedJSON(http.StatusOK, "v1.2.3")
	})
	r.GET("/broken", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})
	r.GET("/events", func(c *gin.Context) {
		c.SSEvent(events.ConfigChanged, `{"reason":"update","ts":1}`)
		c.Writer.Flush()
	})
	return r
}

func TestDesign(t *testing.T) {
	c := NewClient(serveUnix(t, fakeDaemon()))

	r, err := c.Design(design.Request{Scales: []float64{1000, 10000}})
	require.NoError(t, err)
	assert.Equal(t, 48, r.Candidates)
	assert.LessOrEqual(t, r.Solution.Error, 0.01)
}

func TestDesignValidationError(t *testing.T) {
	c := NewClient(serveUnix(t, fakeDaemon()))

	_, err := c.Design(design.Request{VCC: ptr.To(-5.0), TolerancePercent: ptr.To(7.0)})
	require.Error(t, err)

	ve, ok := spec.AsValidationError(err)
	require.True(t, ok, err.Error())
	assert.True(t, ve.Has(spec.FieldVCC))
	assert.True(t, ve.Has(spec.FieldTolerance))
}

func TestGetSeriesAndVersion(t *testing.T) {
	c := NewClient(serveUnix(t, fakeDaemon()))

	values, err := c.GetSeries()
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 110}, values)

	v, err := c.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

func TestSendErrors(t *testing.T) {
	c := NewClient(serveUnix(t, fakeDaemon()))

	_, err := c.Get("/missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Get("/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 500: boom")

	_, err = c.Send("DELETE", "/design", "")
	assert.Error(t, err)
}

func TestDaemonNotRunning(t *testing.T) {
	c := NewClient(filepath.Join(os.TempDir(), "schmitt-not-running.sock"))

	_, err := c.GetVersion()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDaemonNotRunning), err.Error())
}

func TestSubscribeEvents(t *testing.T) {
	c := NewClient(serveUnix(t, fakeDaemon()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := c.SubscribeEvents(ctx)
	require.NoError(t, err)

	ev, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, events.ConfigChanged, ev.Name)

	payload, err := events.DecodeAs[events.ConfigChangedEvent](ev)
	require.NoError(t, err)
	assert.Equal(t, "update", payload.Reason)

	// The fake daemon ends the stream after one event.
	_, ok = <-ch
	assert.False(t, ok)
}
