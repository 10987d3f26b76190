package nbastats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// table is one named result set of a stats response: headers plus rows of
// positional cells.
type table struct {
	name    string
	columns map[string]int
	rows    [][]*fastjson.Value
}

// parseTables decodes the "resultSets" (or singular "resultSet") envelope.
func parseTables(data []byte) (map[string]*table, error) {
	var p fastjson.Parser
	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	sets := root.GetArray("resultSets")
	if sets == nil {
		if single := root.Get("resultSet"); single != nil {
			if single.Type() == fastjson.TypeArray {
				sets, _ = single.Array()
			} else {
				sets = []*fastjson.Value{single}
			}
		}
	}
	if sets == nil {
		return nil, fmt.Errorf("response has no result sets")
	}

	tables := make(map[string]*table, len(sets))
	for _, set := range sets {
		t := &table{
			name:    string(set.GetStringBytes("name")),
			columns: make(map[string]int),
		}
		for i, h := range set.GetArray("headers") {
			t.columns[strings.ToUpper(string(h.GetStringBytes()))] = i
		}
		for _, r := range set.GetArray("rowSet") {
			cells, err := r.Array()
			if err != nil {
				return nil, fmt.Errorf("result set %s: %w", t.name, err)
			}
			t.rows = append(t.rows, cells)
		}
		tables[t.name] = t
	}
	return tables, nil
}

func (t *table) each(fn func(r row)) {
	for _, cells := range t.rows {
		fn(row{columns: t.columns, cells: cells})
	}
}

// row reads cells by column name. Missing columns and nulls read as zero values.
type row struct {
	columns map[string]int
	cells   []*fastjson.Value
}

func (r row) value(col string) *fastjson.Value {
	i, ok := r.columns[strings.ToUpper(col)]
	if !ok || i >= len(r.cells) {
		return nil
	}
	v := r.cells[i]
	if v == nil || v.Type() == fastjson.TypeNull {
		return nil
	}
	return v
}

func (r row) String(col string) string {
	v := r.value(col)
	if v == nil {
		return ""
	}
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes())
	}
	return v.String()
}

func (r row) FloatPtr(col string) *float64 {
	v := r.value(col)
	if v == nil {
		return nil
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		f := v.GetFloat64()
		return &f
	case fastjson.TypeString:
		if f, ok := parseNumber(string(v.GetStringBytes())); ok {
			return &f
		}
	}
	return nil
}

func (r row) Float(col string) float64 {
	if f := r.FloatPtr(col); f != nil {
		return *f
	}
	return 0
}

func (r row) IntPtr(col string) *int {
	f := r.FloatPtr(col)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

func (r row) Int(col string) int {
	if i := r.IntPtr(col); i != nil {
		return *i
	}
	return 0
}

// parseNumber accepts plain numbers and "mm:ss" minute strings.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if mins, secs, found := strings.Cut(raw, ":"); found {
		m, err1 := strconv.ParseFloat(mins, 64)
		s, err2 := strconv.ParseFloat(secs, 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return m + s/60, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
