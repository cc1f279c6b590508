package validator

import (
	"regexp"
	"testing"
)

func TestCheck(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Error("new validator should be valid")
	}
	v.Check(true, "ok", "must never appear")
	if !v.Valid() {
		t.Error("passing check should not invalidate")
	}
	v.Check(false, "field", "must be provided")
	if v.Valid() {
		t.Error("failing check should invalidate")
	}
	if v.Errors["field"] != "must be provided" {
		t.Errorf("unexpected message: %q", v.Errors["field"])
	}
}

func TestAddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("field", "first")
	v.AddError("field", "second")
	if v.Errors["field"] != "first" {
		t.Errorf("expected first message to win; got %q", v.Errors["field"])
	}
}

func TestMatches(t *testing.T) {
	rx := regexp.MustCompile(`^[\w.@+-]+$`)
	if !Matches("user.name+tag", rx) {
		t.Error("expected match")
	}
	if Matches("user name", rx) {
		t.Error("expected no match")
	}
}

func TestEmailRX(t *testing.T) {
	valid := []string{"bob@x.com", "alice.smith@example.co.uk"}
	for _, email := range valid {
		if !Matches(email, EmailRX) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	invalid := []string{"", "bob", "bob@", "@x.com"}
	for _, email := range invalid {
		if Matches(email, EmailRX) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIn(t *testing.T) {
	if !In("user", "user", "moderator", "admin") {
		t.Error("expected value to be in list")
	}
	if In("superuser", "user", "moderator", "admin") {
		t.Error("expected value to not be in list")
	}
}

func TestUnique(t *testing.T) {
	if !Unique([]string{"books", "films", "music"}) {
		t.Error("expected unique")
	}
	if Unique([]string{"books", "books"}) {
		t.Error("expected not unique")
	}
}
