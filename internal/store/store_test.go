package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTeamStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.json")
	team, err := NewTeamStore(path)
	if err != nil {
		t.Fatalf("new team store: %v", err)
	}

	if err := team.SetAddress("u1", "upi", "kai@bank"); err != nil {
		t.Fatalf("set upi: %v", err)
	}
	if err := team.SetAddress("u1", "ltc", "Lxyz"); err != nil {
		t.Fatalf("set ltc: %v", err)
	}
	if err := team.SetAddress("u1", "upi", "kai2@bank"); err != nil {
		t.Fatalf("overwrite upi: %v", err)
	}

	if addr, ok := team.Address("u1", "upi"); !ok || addr != "kai2@bank" {
		t.Fatalf("expected kai2@bank, got %q (%t)", addr, ok)
	}
	if addr, ok := team.Address("u1", "ltc"); !ok || addr != "Lxyz" {
		t.Fatalf("ltc clobbered: %q (%t)", addr, ok)
	}
	if _, ok := team.Address("u2", "upi"); ok {
		t.Fatalf("unexpected address for u2")
	}

	// survives a reload from disk
	reloaded, err := NewTeamStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if addr, _ := reloaded.Address("u1", "upi"); addr != "kai2@bank" {
		t.Fatalf("expected persisted address, got %q", addr)
	}
}

func TestTeamStoreRejectsUnknownKind(t *testing.T) {
	team, err := NewTeamStore(filepath.Join(t.TempDir(), "team.json"))
	if err != nil {
		t.Fatalf("new team store: %v", err)
	}
	if err := team.SetAddress("u1", "btc", "bc1xyz"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestWarningStoreAccumulation(t *testing.T) {
	warnings, err := NewWarningStore(filepath.Join(t.TempDir(), "warnings.json"))
	if err != nil {
		t.Fatalf("new warning store: %v", err)
	}

	for _, reason := range []string{"first", "second", "third"} {
		if err := warnings.Add("u1", NewWarning(reason, "mod1")); err != nil {
			t.Fatalf("add warning: %v", err)
		}
	}
	if err := warnings.Add("u2", NewWarning("other user", "mod1")); err != nil {
		t.Fatalf("add warning: %v", err)
	}

	list := warnings.List("u1")
	if len(list) != 3 {
		t.Fatalf("expected 3 warnings, got %d", len(list))
	}
	if list[0].Reason != "first" || list[2].Reason != "third" {
		t.Fatalf("warnings out of order: %+v", list)
	}

	if err := warnings.Clear("u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := warnings.List("u1"); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
	if got := warnings.List("u2"); len(got) != 1 {
		t.Fatalf("clear leaked to u2: %d", len(got))
	}
}

func TestModlogStoreBinding(t *testing.T) {
	modlog, err := NewModlogStore(filepath.Join(t.TempDir(), "modlog.json"))
	if err != nil {
		t.Fatalf("new modlog store: %v", err)
	}

	if _, ok := modlog.Channel("g1"); ok {
		t.Fatalf("unexpected binding")
	}
	if err := modlog.Set("g1", "c1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := modlog.Set("g1", "c2"); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	if channelID, ok := modlog.Channel("g1"); !ok || channelID != "c2" {
		t.Fatalf("expected c2, got %q", channelID)
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.json")
	if _, err := NewTeamStore(path); err != nil {
		t.Fatalf("new team store: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backing file not created: %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := NewWarningStore(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
