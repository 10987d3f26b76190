package nbastats

import "testing"

const sampleTables = `{
	"resource": "playergamelog",
	"resultSets": [
		{
			"name": "PlayerGameLog",
			"headers": ["Game_ID", "PTS", "FG3_PCT", "MIN", "MATCHUP"],
			"rowSet": [
				["0022400061", 31, null, "34:30", "CHA vs. ATL"],
				["0022400050", "17", 0.5, 28, "CHA @ HOU"]
			]
		},
		{"name": "Empty", "headers": ["A"], "rowSet": []}
	]
}`

func TestParseTablesIndexesByName(t *testing.T) {
	tables, err := parseTables([]byte(sampleTables))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	log := tables["PlayerGameLog"]
	if log == nil || len(log.rows) != 2 {
		t.Fatalf("expected game log rows, got %+v", log)
	}
	if empty := tables["Empty"]; empty == nil || len(empty.rows) != 0 {
		t.Fatalf("expected empty table, got %+v", empty)
	}
}

func TestParseTablesAcceptsSingularResultSet(t *testing.T) {
	data := `{"resultSet": {"name": "CommonAllPlayers", "headers": ["PERSON_ID"], "rowSet": [[2544]]}}`
	tables, err := parseTables([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables["CommonAllPlayers"] == nil {
		t.Fatalf("expected CommonAllPlayers table")
	}
}

func TestParseTablesErrors(t *testing.T) {
	cases := map[string]string{
		"invalid json": `{"resultSets": [`,
		"no sets":      `{"parameters": {}}`,
		"bad row":      `{"resultSets": [{"name": "X", "headers": ["A"], "rowSet": [1]}]}`,
	}
	for name, data := range cases {
		if _, err := parseTables([]byte(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRowAccessorsHandleNullsAndStrings(t *testing.T) {
	tables, err := parseTables([]byte(sampleTables))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []row
	tables["PlayerGameLog"].each(func(r row) { rows = append(rows, r) })

	first, second := rows[0], rows[1]
	if first.String("game_id") != "0022400061" {
		t.Fatalf("expected case-insensitive column lookup, got %q", first.String("game_id"))
	}
	if first.Int("PTS") != 31 || second.Int("PTS") != 17 {
		t.Fatalf("unexpected points %d %d", first.Int("PTS"), second.Int("PTS"))
	}
	if first.FloatPtr("FG3_PCT") != nil {
		t.Fatalf("expected null to map to nil")
	}
	if p := second.FloatPtr("FG3_PCT"); p == nil || *p != 0.5 {
		t.Fatalf("expected 0.5, got %v", p)
	}
	if first.Float("MIN") != 34.5 {
		t.Fatalf("expected mm:ss minutes to parse, got %v", first.Float("MIN"))
	}
	if first.String("MISSING") != "" || first.IntPtr("MISSING") != nil {
		t.Fatalf("expected missing column to read as zero value")
	}
	if second.String("PTS") != "17" {
		t.Fatalf("expected string cell passthrough, got %q", second.String("PTS"))
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{" 0.455 ", 0.455, true},
		{"10:30", 10.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1:xx", 0, false},
	}
	for _, c := range cases {
		got, ok := parseNumber(c.raw)
		if ok != c.ok || got != c.want {
			t.Fatalf("parseNumber(%q) = %v,%v want %v,%v", c.raw, got, ok, c.want, c.ok)
		}
	}
}
