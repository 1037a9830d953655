package form

import (
	"iter"
	"net/url"
	"strings"
)

// Data is a single name-value entry of an application/x-www-form-urlencoded body.
type Data struct {
	Name  string
	Value string
}

// Form holds entries in the order they appeared in the body, duplicates included. Lookups
// are case-sensitive and linear, which proves to be more efficient on relatively low amount
// of entries, which often enough is the case.
type Form []Data

// Name returns the first Data matching the name.
func (f Form) Name(name string) (Data, bool) {
	for data := range f.Names(name) {
		return data, true
	}

	return Data{}, false
}

// Names returns an iterator over all Data matching the name.
func (f Form) Names(name string) iter.Seq[Data] {
	return func(yield func(Data) bool) {
		for _, entry := range f {
			if entry.Name == name {
				if !yield(entry) {
					break
				}
			}
		}
	}
}

// Value returns the first value corresponding to the name, otherwise an empty string.
func (f Form) Value(name string) string {
	data, _ := f.Name(name)
	return data.Value
}

// Values returns all values corresponding to the name in their original order. Returns nil
// if the name isn't presented.
func (f Form) Values(name string) (values []string) {
	for data := range f.Names(name) {
		values = append(values, data.Value)
	}

	return values
}

// Has indicates whether there's at least one entry with the name.
func (f Form) Has(name string) bool {
	_, found := f.Name(name)
	return found
}

// Keys returns all unique names in order of their first appearance.
func (f Form) Keys() []string {
	keys := make([]string, 0, len(f))

	for _, entry := range f {
		if !contains(keys, entry.Name) {
			keys = append(keys, entry.Name)
		}
	}

	return keys
}

// Iter returns an iterator over the name-value pairs.
func (f Form) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, entry := range f {
			if !yield(entry.Name, entry.Value) {
				break
			}
		}
	}
}

// Encode serializes the form back into the application/x-www-form-urlencoded, keeping the
// original order of entries.
func (f Form) Encode() string {
	var b strings.Builder

	for i, entry := range f {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(entry.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(entry.Value))
	}

	return b.String()
}

// Clone creates a deep copy, which may be used later or stored somewhere safely.
func (f Form) Clone() Form {
	if len(f) == 0 {
		return nil
	}

	clone := make(Form, len(f))
	for i, entry := range f {
		clone[i] = Data{
			Name:  strings.Clone(entry.Name),
			Value: strings.Clone(entry.Value),
		}
	}

	return clone
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if element == key {
			return true
		}
	}

	return false
}
