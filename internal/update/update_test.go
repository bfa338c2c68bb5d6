package update

import "testing"

func TestParseVersionAcceptsPrefixedTags(t *testing.T) {
	v, err := parseVersion("v1.2.3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Errorf("expected 1.2.3, got %s", v)
	}
}

func TestParseVersionRejectsDevBuilds(t *testing.T) {
	for _, s := range []string{"", "dev", "not-a-version"} {
		if _, err := parseVersion(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestCheckSkipsDevBuilds(t *testing.T) {
	rel, err := Check("dev")
	if rel != nil || err != nil {
		t.Errorf("dev build check must be a silent no-op, got rel=%v err=%v", rel, err)
	}
}
