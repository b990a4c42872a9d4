package junit

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Document is a serializable snapshot of a Report.
type Document struct {
	Tests    int
	Failures int
	Suites   []Suite
}

// Suite is one <testsuite>.
type Suite struct {
	Name     string
	Tests    int
	Failures int
	Cases    []Case
}

// Case is one <testcase>. Time is empty when the attribute is omitted.
type Case struct {
	Classname string
	Name      string
	Time      string
	Status    Status
	Message   string
}

// XML returns the compact document without an XML declaration.
//
// Elements are written by hand: encoding/xml never emits self-closing tags.
func (d *Document) XML() []byte {
	var b bytes.Buffer
	b.WriteString(`<testsuites`)
	attr(&b, "tests", strconv.Itoa(d.Tests))
	attr(&b, "failures", strconv.Itoa(d.Failures))
	b.WriteByte('>')
	for _, s := range d.Suites {
		b.WriteString(`<testsuite`)
		attr(&b, "name", s.Name)
		attr(&b, "tests", strconv.Itoa(s.Tests))
		attr(&b, "failures", strconv.Itoa(s.Failures))
		b.WriteByte('>')
		for _, c := range s.Cases {
			writeCase(&b, c)
		}
		b.WriteString(`</testsuite>`)
	}
	b.WriteString(`</testsuites>`)
	return b.Bytes()
}

func writeCase(b *bytes.Buffer, c Case) {
	b.WriteString(`<testcase`)
	attr(b, "classname", c.Classname)
	attr(b, "name", c.Name)
	if c.Time != "" {
		attr(b, "time", c.Time)
	}
	switch c.Status {
	case StatusFailed:
		b.WriteString(`><failure`)
		attr(b, "message", c.Message)
		b.WriteString(`/></testcase>`)
	case StatusSkipped:
		b.WriteString(`><skipped/></testcase>`)
	default:
		b.WriteString(`/>`)
	}
}

func attr(b *bytes.Buffer, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	_ = xml.EscapeText(b, []byte(value)) // bytes.Buffer writes never fail
	b.WriteByte('"')
}

// WriteTo writes the document with an XML declaration and a trailing
// newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.Write(d.XML())
	b.WriteByte('\n')
	n, err := w.Write(b.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("writing junit document: %w", err)
	}
	return int64(n), nil
}
