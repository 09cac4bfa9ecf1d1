package dataset

// Row is one (article, state) pair of the enriched dataset. An article
// mentioning several states produces one row per state, all sharing the same
// leaning score. PoliticalLeaning is on the raw [-10, 10] scale.
type Row struct {
	State            string  `json:"state"`
	Title            string  `json:"title"`
	URL              string  `json:"url"`
	Source           string  `json:"source"`
	PoliticalLeaning float64 `json:"political_leaning"`
	Date             string  `json:"date"`
}

// Table is the ordered output of one pipeline run. It is regenerated
// wholesale each run; there is no merging with prior runs.
type Table struct {
	rows []Row
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

func (t *Table) Rows() []Row {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Empty() bool {
	return len(t.rows) == 0
}
