package main

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestApp(t *testing.T) (*app, *bool) {
	t.Helper()
	t.Setenv("CATALOG_TELEMETRY_ENABLED", "false")
	t.Setenv("CATALOG_LOG_LEVEL", "ERROR")
	t.Setenv("CATALOG_PREFS_PATH", filepath.Join(t.TempDir(), "prefs.yaml"))

	released := false
	a := &app{}
	a.closers = append(a.closers, func() { released = true })
	return a, &released
}

func TestExecute_ReleasesWhenCommandFails(t *testing.T) {
	a, released := newTestApp(t)

	if err := a.execute(context.Background(), []string{"token"}); err == nil {
		t.Fatal("token without --subject should fail")
	}
	if !*released {
		t.Error("closers did not run after a failed command")
	}
	if a.closers != nil {
		t.Errorf("closers = %d after execute, want none", len(a.closers))
	}
}

func TestExecute_ReleasesWhenSetupFailsHalfway(t *testing.T) {
	a, released := newTestApp(t)
	t.Setenv("CATALOG_DATABASE_URL", "mysql://catalog@localhost/catalog")

	if err := a.execute(context.Background(), []string{"--local", "latest"}); err == nil {
		t.Fatal("unsupported database url should fail setup")
	}
	if !*released {
		t.Error("closers registered before the failure did not run")
	}
	if a.closers != nil {
		t.Errorf("closers = %d after execute, want none", len(a.closers))
	}
}

func TestExecute_ClosesSessionWhenCommandFails(t *testing.T) {
	a, released := newTestApp(t)
	t.Setenv("CATALOG_DATABASE_URL", "sqlite://"+filepath.Join(t.TempDir(), "catalog.db"))

	if err := a.execute(context.Background(), []string{"--local", "story", "abc"}); err == nil {
		t.Fatal("story with a non-numeric id should fail")
	}
	if a.session == nil {
		t.Fatal("session was not started")
	}
	if !*released || a.closers != nil {
		t.Error("closers did not run after a failed command")
	}
}
