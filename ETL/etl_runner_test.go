package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LilVoxy/department_summary/ETL/config"
	"github.com/LilVoxy/department_summary/ETL/load"
	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneUser = `{"users": [{"firstName": "A", "lastName": "B", "age": 30, "gender": "male",
  "hair": {"color": "Black"}, "address": {"postalCode": "111"}, "company": {"department": "Eng"}}]}`

func newTestRunner(t *testing.T, handler http.HandlerFunc, out *bytes.Buffer) *ETLRunner {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultSummaryConfig
	cfg.SourceURL = srv.URL
	cfg.RunInterval = 50 * time.Millisecond

	logger := utils.NewNopLogger()
	runner := NewETLRunner(cfg, logger)
	runner.loadManager = load.NewLoadManager(load.NewJSONLoader(out, false), logger)
	return runner
}

func TestExecuteETLWritesSummaries(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, oneUser)
	}, &out)

	require.NoError(t, runner.ExecuteETL(context.Background()))

	var table models.SummaryTable
	require.NoError(t, json.Unmarshal(out.Bytes(), &table))
	require.Contains(t, table, "Eng")
	assert.Equal(t, "0-30", table["Eng"].AgeRange)
}

func TestExecuteETLUpstreamFailureWritesNothing(t *testing.T) {
	var out bytes.Buffer
	runner := newTestRunner(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, &out)

	err := runner.ExecuteETL(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Zero(t, out.Len())
}

func TestStartSchedulerRunsUntilCancelled(t *testing.T) {
	var calls int32
	var out bytes.Buffer
	runner := newTestRunner(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.StartScheduler(ctx) }()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("планировщик не остановился")
	}
}
