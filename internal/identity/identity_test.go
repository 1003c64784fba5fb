package identity

import (
	"encoding/json"
	"testing"
)

func TestOrUnknown(t *testing.T) {
	if got := orUnknown(""); got != Unknown {
		t.Errorf("orUnknown(\"\") = %q, want %q", got, Unknown)
	}
	if got := orUnknown("Ada Lovelace"); got != "Ada Lovelace" {
		t.Errorf("orUnknown kept text = %q", got)
	}
}

func TestInfoJSON(t *testing.T) {
	data, err := json.Marshal(Info{Name: "Ada", RollNumber: "R-1", Confidence: 0.92})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"Ada","roll_number":"R-1","confidence_score":0.92}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	// Confidence is omitted when no words were read.
	data, err = json.Marshal(Info{Name: Unknown, RollNumber: Unknown})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want = `{"name":"Unknown","roll_number":"Unknown"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
