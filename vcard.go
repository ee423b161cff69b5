package sigcard

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const (
	// MediaType is the content type of a generated card.
	MediaType = "text/vcard;charset=utf-8"
	// FileExt is the extension of a generated card file.
	FileExt = "vcf"

	vcardVersion = "3.0"
)

// AddressComponents is the decomposed form of Contact.Address.
type AddressComponents struct {
	Street     string
	City       string
	PostalCode string
}

// IsEmpty reports whether all three components are empty.
func (a AddressComponents) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.PostalCode == ""
}

// SplitAddress splits "Street, City, Postal Code" on commas and trims each
// segment. Segments past the third are dropped.
func SplitAddress(address string) AddressComponents {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	var a AddressComponents
	switch {
	case len(parts) >= 3:
		a.Street, a.City, a.PostalCode = parts[0], parts[1], parts[2]
	case len(parts) == 2:
		a.Street, a.City = parts[0], parts[1]
	default:
		a.Street = parts[0]
	}
	return a
}

// File is a serialized card ready for download.
type File struct {
	Data      []byte
	FileName  string
	MediaType string
}

// WriteTo writes the card bytes to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Data)
	if err != nil {
		return int64(n), &SerializationError{Cause: err}
	}
	if n != len(f.Data) {
		return int64(n), &SerializationError{Cause: io.ErrShortWrite}
	}
	return int64(n), nil
}

// ServeHTTP offers the card as an attachment.
func (f *File) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", f.MediaType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(f.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	_, _ = f.WriteTo(w)
}

// line is one conditional property of the card.
type line struct {
	when  func(c Contact, a AddressComponents) bool
	build func(c Contact, a AddressComponents) string
}

func nonEmpty(get func(Contact) string) func(Contact, AddressComponents) bool {
	return func(c Contact, _ AddressComponents) bool { return get(c) != "" }
}

// optionalLines are emitted in this order between N and END.
// Importers read the fields positionally; the layout must not change.
var optionalLines = []line{
	{
		when:  nonEmpty(func(c Contact) string { return c.Organization }),
		build: func(c Contact, _ AddressComponents) string { return "ORG:" + c.Organization },
	},
	{
		when:  nonEmpty(func(c Contact) string { return c.Title }),
		build: func(c Contact, _ AddressComponents) string { return "TITLE:" + c.Title },
	},
	{
		when: func(_ Contact, a AddressComponents) bool { return !a.IsEmpty() },
		build: func(_ Contact, a AddressComponents) string {
			return fmt.Sprintf("ADR;TYPE=WORK:;;%s;%s;;%s;", a.Street, a.City, a.PostalCode)
		},
	},
	{
		when:  nonEmpty(func(c Contact) string { return c.WorkPhone }),
		build: func(c Contact, _ AddressComponents) string { return "TEL;TYPE=WORK,VOICE:" + c.WorkPhone },
	},
	{
		when:  nonEmpty(func(c Contact) string { return c.MobilePhone }),
		build: func(c Contact, _ AddressComponents) string { return "TEL;TYPE=CELL,VOICE:" + c.MobilePhone },
	},
	{
		when:  nonEmpty(func(c Contact) string { return c.Email }),
		build: func(c Contact, _ AddressComponents) string { return "EMAIL;TYPE=INTERNET:" + c.Email },
	},
	{
		when:  nonEmpty(func(c Contact) string { return c.Website }),
		build: func(c Contact, _ AddressComponents) string { return "URL:" + c.Website },
	},
}

// Serialize renders c as a vCard 3.0 file. Field values are written verbatim.
// It returns a *ValidationError and no file when full name, first name or
// last name is blank.
func Serialize(c Contact) (*File, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	addr := SplitAddress(c.Address)

	var buf bytes.Buffer
	writeLine := func(s string) {
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	writeLine("BEGIN:VCARD")
	writeLine("VERSION:" + vcardVersion)
	writeLine("FN:" + c.FullName)
	writeLine(fmt.Sprintf("N:%s;%s;%s;;", c.LastName, c.FirstName, c.Prefix))
	for _, l := range optionalLines {
		if l.when(c, addr) {
			writeLine(l.build(c, addr))
		}
	}
	writeLine("END:VCARD")

	return &File{
		Data:      buf.Bytes(),
		FileName:  FileName(c),
		MediaType: MediaType,
	}, nil
}

// FileName derives "first_last.vcf" from the lowercased names, using
// "contact" and "generated" in place of an empty first or last name.
func FileName(c Contact) string {
	first := strings.ToLower(c.FirstName)
	if first == "" {
		first = "contact"
	}
	last := strings.ToLower(c.LastName)
	if last == "" {
		last = "generated"
	}
	return first + "_" + last + "." + FileExt
}
