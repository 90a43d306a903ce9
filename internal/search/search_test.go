package search

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/aurum/internal/rpc"
	"github.com/pdiddy/aurum/pkg/types"
)

// --- mock client ---

// mockClient returns canned results per term and records every dispatch.
type mockClient struct {
	results map[string][]types.Package
	errs    map[string]error
	calls   []string
}

func (m *mockClient) Search(_ context.Context, _ rpc.SearchBy, term string) ([]types.Package, error) {
	m.calls = append(m.calls, term)
	if err, ok := m.errs[term]; ok {
		return nil, err
	}
	return m.results[term], nil
}

func pkg(name string) types.Package {
	return types.Package{Name: name, Version: "1.0-1"}
}

// --- orchestration ---

func TestSearchNoTerms(t *testing.T) {
	c := &mockClient{}
	_, err := Search(context.Background(), c, rpc.SearchByNameDesc, nil)
	if err == nil {
		t.Fatal("Search should fail with no terms")
	}
	if len(c.calls) != 0 {
		t.Errorf("dispatched %d requests, want 0", len(c.calls))
	}
}

func TestSearchUnionPreservesTermOrder(t *testing.T) {
	c := &mockClient{results: map[string][]types.Package{
		"a": {pkg("a1"), pkg("a2")},
		"b": {pkg("b1"), pkg("a2"), pkg("b2")},
	}}

	pkgs, err := Search(context.Background(), c, rpc.SearchByNameDesc, []string{"a", "b"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	var names []string
	for _, p := range pkgs {
		names = append(names, p.Name)
	}
	want := []string{"a1", "a2", "b1", "b2"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestSearchRepeatedTermDispatchesTwiceDedupesOnce(t *testing.T) {
	c := &mockClient{results: map[string][]types.Package{
		"aura": {pkg("aura-bin"), pkg("aura-git")},
	}}

	pkgs, err := Search(context.Background(), c, rpc.SearchByNameDesc, []string{"aura", "aura"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(c.calls) != 2 {
		t.Errorf("dispatched %d requests, want 2 (one per term occurrence)", len(c.calls))
	}
	if len(pkgs) != 2 {
		t.Errorf("len(pkgs) = %d, want 2 (duplicates dropped)", len(pkgs))
	}
}

func TestSearchFirstOccurrenceWins(t *testing.T) {
	first := types.Package{Name: "dup", Description: "from term a"}
	second := types.Package{Name: "dup", Description: "from term b"}
	c := &mockClient{results: map[string][]types.Package{
		"a": {first},
		"b": {second},
	}}

	pkgs, err := Search(context.Background(), c, rpc.SearchByNameDesc, []string{"a", "b"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("len(pkgs) = %d, want 1", len(pkgs))
	}
	if pkgs[0].Description != "from term a" {
		t.Errorf("Description = %q, later duplicates must not overwrite fields", pkgs[0].Description)
	}
}

func TestSearchZeroMatchesIsSuccess(t *testing.T) {
	c := &mockClient{results: map[string][]types.Package{}}

	pkgs, err := Search(context.Background(), c, rpc.SearchByNameDesc, []string{"wontfindanypackages"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(pkgs) != 0 {
		t.Errorf("len(pkgs) = %d, want 0", len(pkgs))
	}
}

func TestSearchAbortsOnFirstError(t *testing.T) {
	c := &mockClient{
		results: map[string][]types.Package{
			"ok":    {pkg("fine")},
			"later": {pkg("never-reached")},
		},
		errs: map[string]error{
			"bad": &rpc.ServiceError{Message: "Too many package results."},
		},
	}

	pkgs, err := Search(context.Background(), c, rpc.SearchByNameDesc, []string{"ok", "bad", "later"})
	if err == nil {
		t.Fatal("Search should propagate the service error")
	}
	if pkgs != nil {
		t.Errorf("pkgs = %v, partial aggregate must be discarded", pkgs)
	}
	if strings.Join(c.calls, ",") != "ok,bad" {
		t.Errorf("calls = %v, remaining terms must not be attempted", c.calls)
	}
}

// --- end to end against a recording server ---

func TestSearchAgainstServerRecordsExactURIs(t *testing.T) {
	var uris []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uris = append(uris, r.URL.RequestURI())
		fmt.Fprint(w, `{"version":5,"type":"search","resultcount":2,"results":[
			{"Name":"aura-bin","Version":"3.2.9-1","NumVotes":130},
			{"Name":"aura-git","Version":"3.2.9-1","NumVotes":12}]}`)
	}))
	defer ts.Close()

	client := rpc.NewClient(types.RPCConfig{BaseURL: ts.URL})
	pkgs, err := Search(context.Background(), client, rpc.SearchByNameDesc, []string{"aura", "aura"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := "/rpc?by=name-desc&type=search&v=5&arg=aura"
	if len(uris) != 2 || uris[0] != want || uris[1] != want {
		t.Errorf("uris = %v, want %q twice", uris, want)
	}

	var buf bytes.Buffer
	Render(&buf, pkgs, true)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("rendered %d lines, want 2 (same as a single-term run)", len(lines))
	}
}

// --- rendering ---

func TestRenderQuiet(t *testing.T) {
	pkgs := []types.Package{pkg("aura-bin"), pkg("aura-git")}

	var buf bytes.Buffer
	Render(&buf, pkgs, true)
	if buf.String() != "aura-bin\naura-git\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRenderEmptySetWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil, false)
	if buf.Len() != 0 {
		t.Errorf("output = %q, want no trailing content", buf.String())
	}
}

func TestRenderVerboseOneLinePerRecord(t *testing.T) {
	pkgs := []types.Package{
		{Name: "aura-bin", Version: "3.2.9-1", NumVotes: 130, Popularity: 1.02, Description: "A secure package manager"},
		{Name: "stale-pkg", Version: "0.1-1", OutOfDate: 1534000474},
	}

	var buf bytes.Buffer
	Render(&buf, pkgs, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "aur/aura-bin 3.2.9-1 (+130 1.02)") {
		t.Errorf("line = %q", lines[0])
	}
	if !strings.Contains(lines[0], "A secure package manager") {
		t.Errorf("line should carry the description: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[out-of-date]") {
		t.Errorf("line should flag out-of-date: %q", lines[1])
	}
}

// --- result set ---

func TestResultSetMergeDisjoint(t *testing.T) {
	var set resultSet
	set.merge([]types.Package{pkg("a"), pkg("b")})
	set.merge([]types.Package{pkg("c")})
	if len(set.pkgs) != 3 {
		t.Errorf("len = %d, want 3", len(set.pkgs))
	}
}

func TestResultSetMergeEmptyIncoming(t *testing.T) {
	var set resultSet
	set.merge(nil)
	set.merge([]types.Package{pkg("a")})
	set.merge(nil)
	if len(set.pkgs) != 1 {
		t.Errorf("len = %d, want 1", len(set.pkgs))
	}
}
