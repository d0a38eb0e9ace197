package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/averku/chartle/internal/model"
)

func TestWriteFacts(t *testing.T) {
	facts := []model.Fact{
		{Day: model.DayIdentity{Index: 1}, Player: "@alice", Guesses: 3, Solved: true, IsCrown: true, CrownRound: "3/6"},
		{Day: model.DayIdentity{Index: 1}, Player: "@bob", Solved: false},
		{Day: model.DayIdentity{Index: 2}, Player: `we"ird,name`, Guesses: 6, Solved: true},
	}

	var buf bytes.Buffer
	if err := WriteFacts(&buf, facts); err != nil {
		t.Fatalf("WriteFacts: %v", err)
	}

	want := strings.Join([]string{
		"dayIndex,player,guesses,solved,isCrown,crownRound",
		"1,@alice,3,true,true,3/6",
		"1,@bob,,false,false,",
		`2,"we""ird,name",6,true,false,`,
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.HasSuffix(buf.String(), "\n") {
		t.Fatal("output should not end with a newline")
	}
}

func TestRoundTrip(t *testing.T) {
	facts := []model.Fact{
		{Day: model.DayIdentity{Index: 1}, Player: "@alice", Guesses: 1, Solved: true, IsCrown: true, CrownRound: "1/6"},
		{Day: model.DayIdentity{Index: 1}, Player: "@bob", Guesses: 4, Solved: true},
		{Day: model.DayIdentity{Index: 2}, Player: "@carol", Solved: false},
		{Day: model.DayIdentity{Index: 3}, Player: "new,line\nname", Guesses: 2, Solved: true},
	}

	var buf bytes.Buffer
	if err := WriteFacts(&buf, facts); err != nil {
		t.Fatalf("WriteFacts: %v", err)
	}
	records, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != len(facts) {
		t.Fatalf("got %d records, want %d", len(records), len(facts))
	}
	for i, rec := range records {
		f := facts[i]
		if rec.DayIndex != f.Day.Index || rec.Player != f.Player || rec.Solved != f.Solved ||
			rec.IsCrown != f.IsCrown || rec.CrownRound != f.CrownRound {
			t.Fatalf("record %d mismatch: %+v vs fact %+v", i, rec, f)
		}
		wantGuesses := 0
		if f.Solved {
			wantGuesses = f.Guesses
		}
		if rec.Guesses != wantGuesses {
			t.Fatalf("record %d guesses = %d, want %d", i, rec.Guesses, wantGuesses)
		}
	}
}

func TestReadRecordsEmpty(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %v", records)
	}
}

func TestReadRecordsBadHeader(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("a,b,c,d,e,f\n"))
	if err == nil {
		t.Fatal("expected header error")
	}
}
