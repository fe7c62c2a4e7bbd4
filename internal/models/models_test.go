package models

import (
	"encoding/json"
	"testing"
)

func TestFlagUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Flag
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`null`, false, false},
		{`1`, true, false},
		{`0`, false, false},
		{`"yes"`, true, false},
		{`"on"`, true, false},
		{`"agreed"`, true, false},
		{`"false"`, false, false},
		{`"no"`, false, false},
		{`""`, false, false},
		{`[true]`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.in), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if f != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, f, tt.want)
			}
		})
	}
}

func TestTextUnmarshal(t *testing.T) {
	var p Publication
	if err := json.Unmarshal([]byte(`{"volume":12,"issue":"3","pages":null}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Volume != "12" || p.Issue != "3" || p.Pages != "" {
		t.Errorf("got volume=%q issue=%q pages=%q", p.Volume, p.Issue, p.Pages)
	}
}
