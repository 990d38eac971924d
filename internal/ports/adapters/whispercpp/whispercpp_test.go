package whispercpp

import "testing"

func TestParseJSON_TrimsAndOrders(t *testing.T) {
	b := []byte(`{"segments":[
		{"start":0,"end":4.2,"text":"  hello there  "},
		{"start":4.2,"end":7.5,"text":"general"}
	]}`)
	segs, err := ParseJSON(b)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "hello there" {
		t.Fatalf("expected trimmed text, got %q", segs[0].Text)
	}
}

func TestParseJSON_RejectsOutOfOrder(t *testing.T) {
	b := []byte(`{"segments":[
		{"start":10,"end":12,"text":"later"},
		{"start":0,"end":2,"text":"earlier"}
	]}`)
	if _, err := ParseJSON(b); err == nil {
		t.Fatal("expected error for out-of-order segments")
	}
}

func TestParseJSON_RejectsNonPositiveDuration(t *testing.T) {
	b := []byte(`{"segments":[{"start":5,"end":5,"text":"zero"}]}`)
	if _, err := ParseJSON(b); err == nil {
		t.Fatal("expected error for zero-duration segment")
	}
}

func TestParseJSON_BadJSON(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
