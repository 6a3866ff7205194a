package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCapturedQueryLogger(debug bool) (*queryLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*queryLogger), buf
}

func selectOneRow() (string, int64) { return "SELECT 1", 1 }

func TestQueryLogger_FailureLogsAtWarn(t *testing.T) {
	log, buf := newCapturedQueryLogger(false)

	log.Trace(context.Background(), time.Now(), selectOneRow, errors.New("connection refused"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "backend query failed")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestQueryLogger_RecordMissStaysSilent(t *testing.T) {
	log, buf := newCapturedQueryLogger(false)

	log.Trace(context.Background(), time.Now(), selectOneRow, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String(), "a miss is a data signal, not an incident")
}

func TestQueryLogger_SlowQueryLogsThreshold(t *testing.T) {
	log, buf := newCapturedQueryLogger(false)

	log.Trace(context.Background(), time.Now().Add(-time.Second), selectOneRow, nil)

	assert.Contains(t, buf.String(), "slow backend query")
	assert.Contains(t, buf.String(), "threshold")
}

func TestQueryLogger_FastQueryOnlyLoggedInDebug(t *testing.T) {
	quiet, quietBuf := newCapturedQueryLogger(false)
	quiet.Trace(context.Background(), time.Now(), selectOneRow, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newCapturedQueryLogger(true)
	verbose.Trace(context.Background(), time.Now(), selectOneRow, nil)
	assert.Contains(t, verboseBuf.String(), "backend query")
}
