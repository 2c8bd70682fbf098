package codec

import (
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// Contact is a parsed vCard: the first value of every property, in the order
// the properties appeared.
type Contact struct {
	keys   []string
	values map[string]string
}

// ParseContact reads KEY[;params]:VALUE lines from a vCard. BEGIN, END and
// VERSION lines are skipped, as are lines without a colon and empty values.
func ParseContact(raw string) Contact {
	c := Contact{values: make(map[string]string)}

	for _, line := range unfoldLines(raw) {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, _, _ := strings.Cut(name, ";")
		key = strings.ToUpper(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "", "BEGIN", "END", "VERSION":
			continue
		}
		if value == "" {
			continue
		}
		if _, seen := c.values[key]; seen {
			continue
		}
		c.keys = append(c.keys, key)
		c.values[key] = value
	}

	return c
}

// Get returns the value of property key (case-insensitive).
func (c Contact) Get(key string) string {
	return c.values[strings.ToUpper(key)]
}

// Name returns FN, or the name assembled from the N property.
func (c Contact) Name() string {
	if fn := c.Get("FN"); fn != "" {
		return fn
	}
	n := c.Get("N")
	if n == "" {
		return ""
	}
	parts := strings.Split(n, ";")
	last := parts[0]
	first := ""
	if len(parts) > 1 {
		first = parts[1]
	}
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// Phone returns the digits of the TEL property.
func (c Contact) Phone() string {
	return digitsOnly(c.Get("TEL"))
}

func (c Contact) Email() string {
	return c.Get("EMAIL")
}

// Fields returns the properties as (KEY, VALUE) pairs in original order.
func (c Contact) Fields() []models.Field {
	if len(c.keys) == 0 {
		return nil
	}
	fields := make([]models.Field, 0, len(c.keys))
	for _, k := range c.keys {
		fields = append(fields, models.Field{Label: k, Value: c.values[k]})
	}
	return fields
}

// FieldSet maps the card back onto the editable contact form.
func (c Contact) FieldSet() models.ContactFields {
	fs := models.ContactFields{
		Email: c.Email(),
		Phone: c.Get("TEL"),
		Org:   c.Get("ORG"),
		Title: c.Get("TITLE"),
		URL:   c.Get("URL"),
	}

	if n := c.Get("N"); n != "" {
		parts := strings.Split(n, ";")
		fs.Last = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			fs.First = strings.TrimSpace(parts[1])
		}
	} else {
		fs.First = c.Get("FN")
	}

	if adr := c.Get("ADR"); adr != "" {
		parts := strings.Split(adr, ";")
		if len(parts) > 2 {
			fs.Address = parts[2]
		} else {
			fs.Address = adr
		}
	}

	return fs
}

// unfoldLines splits on CRLF or LF and joins folded continuation lines
// (lines starting with a space or tab) onto the previous one.
func unfoldLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if len(lines) > 0 && line != "" && (line[0] == ' ' || line[0] == '\t') {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
