package dataset

// ColumnType is the inferred type of a dataset column
type ColumnType string

const (
	// TypeString is the default column type
	TypeString ColumnType = "string"
	// TypeInteger is inferred when every non-empty value parses as an integer
	TypeInteger ColumnType = "integer"
)

// Column describes one column of a dataset
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// Schema is the ordered list of columns of a dataset.
// Order matches the header row of the source file.
type Schema []Column

// Names returns the column names in schema order
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Index returns the position of the named column, or -1 if absent
func (s Schema) Index(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}
	return -1
}
