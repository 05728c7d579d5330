package domain

// Field names the extractors act on. Every other field is passed through.
const (
	FieldEmployees     = "employees"
	FieldEstablishDate = "establish_date"
	FieldMoney         = "money"
)

// Field is a single named value within a record.
// Value holds whatever the input carried for the field (usually a string
// or nil) or, after normalisation, an int64 or nil.
type Field struct {
	Name  string
	Value any
}

// Record is one company profile as emitted by the scraper.
// Fields keep the order in which they appeared on the input line.
type Record struct {
	Fields []Field
}

// NewRecord creates a record from the given fields.
func NewRecord(fields ...Field) Record {
	return Record{Fields: fields}
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.Fields)
}

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}
