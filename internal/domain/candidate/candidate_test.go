package candidate

import "testing"

func sample() []Candidate {
	return []Candidate{
		{ID: "c1", Nome: "Maria Souza", Vaga: "5"},
		{ID: "c2", Nome: "João Lima", Vaga: "9"},
		{ID: "c3", Nome: "Ana Castro", Vaga: "5"},
	}
}

func TestFilterByJob(t *testing.T) {
	got := FilterByJob(sample(), "5")
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Fatalf("unexpected filter result: %v", got)
	}

	if got := FilterByJob(sample(), "404"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFilterByJobSentinel(t *testing.T) {
	items := sample()
	got := FilterByJob(items, AllJobs)
	if len(got) != len(items) {
		t.Fatalf("sentinel must keep the full list, got %d", len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Fatalf("order changed at %d: %v", i, got)
		}
	}
}

func TestMatchPercent(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{0.87, 87},
		{0.874, 87},
		{0.875, 88},
		{1, 100},
	}
	for _, tc := range cases {
		c := Candidate{Score: tc.score}
		if got := c.MatchPercent(); got != tc.want {
			t.Errorf("score %v: got %d want %d", tc.score, got, tc.want)
		}
	}
}
