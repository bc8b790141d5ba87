package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

var errBadQuery = errors.New("bad query")

func TestLocatorRecorder_Search(t *testing.T) {
	rec := LocatorRecorder{IsInvalid: func(err error) bool { return errors.Is(err, errBadQuery) }}

	okBefore := testutil.ToFloat64(SearchTotal.WithLabelValues("ok"))
	invalidBefore := testutil.ToFloat64(SearchTotal.WithLabelValues("invalid"))
	errorBefore := testutil.ToFloat64(SearchTotal.WithLabelValues("error"))

	rec.ObserveSearch(2, nil)
	rec.ObserveSearch(0, errBadQuery)
	rec.ObserveSearch(0, errors.New("boom"))

	if got := testutil.ToFloat64(SearchTotal.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Errorf("ok delta = %f", got)
	}
	if got := testutil.ToFloat64(SearchTotal.WithLabelValues("invalid")) - invalidBefore; got != 1 {
		t.Errorf("invalid delta = %f", got)
	}
	if got := testutil.ToFloat64(SearchTotal.WithLabelValues("error")) - errorBefore; got != 1 {
		t.Errorf("error delta = %f", got)
	}
	if testutil.CollectAndCount(SearchMatches) == 0 {
		t.Error("expected search_matches to be collected")
	}
}

func TestLocatorRecorder_NilClassifier(t *testing.T) {
	before := testutil.ToFloat64(SearchTotal.WithLabelValues("error"))
	LocatorRecorder{}.ObserveSearch(0, errBadQuery)
	if got := testutil.ToFloat64(SearchTotal.WithLabelValues("error")) - before; got != 1 {
		t.Errorf("error delta = %f", got)
	}
}

func TestLocatorRecorder_Reload(t *testing.T) {
	rec := LocatorRecorder{}
	okBefore := testutil.ToFloat64(RegistryReloadsTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(RegistryReloadsTotal.WithLabelValues("error"))

	rec.ObserveReload(3, nil)
	if got := testutil.ToFloat64(RegistryAgents); got != 3 {
		t.Errorf("registry_agents = %f, want 3", got)
	}

	rec.ObserveReload(0, errors.New("dup"))
	if got := testutil.ToFloat64(RegistryAgents); got != 3 {
		t.Errorf("failed reload changed registry_agents to %f", got)
	}

	if got := testutil.ToFloat64(RegistryReloadsTotal.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Errorf("ok delta = %f", got)
	}
	if got := testutil.ToFloat64(RegistryReloadsTotal.WithLabelValues("error")) - errBefore; got != 1 {
		t.Errorf("error delta = %f", got)
	}
}

func TestRegisterLocatorMetrics_Idempotent(t *testing.T) {
	RegisterLocatorMetrics()
	RegisterLocatorMetrics()
}
