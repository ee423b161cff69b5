package sigcard

import "fmt"

// Contact is the canonical record for a single contact. Every field is a plain
// string, so no field can ever be absent; "not known" is the empty string.
type Contact struct {
	FullName     string `json:"fullName" validate:"nonblank"`
	FirstName    string `json:"firstName" validate:"nonblank"`
	LastName     string `json:"lastName" validate:"nonblank"`
	Prefix       string `json:"prefix"`
	Organization string `json:"organization"`
	Title        string `json:"title"`
	Address      string `json:"address"`
	WorkPhone    string `json:"workPhone"`
	MobilePhone  string `json:"mobilePhone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
}

// FieldInfo describes one Contact field.
type FieldInfo struct {
	Key         string // JSON key
	Label       string // form label
	Description string // guidance for the extraction model
	Required    bool   // required in the service's output schema
}

// contactFields is ordered like the form and the Contact struct.
var contactFields = []FieldInfo{
	{Key: "fullName", Label: "Full Name", Description: "The full name of the person (e.g., 'Dr. Max Mustermann').", Required: true},
	{Key: "firstName", Label: "First Name", Description: "The first name.", Required: true},
	{Key: "lastName", Label: "Last Name", Description: "The last name.", Required: true},
	{Key: "prefix", Label: "Prefix / Title (e.g., Dr.)", Description: "Any titles or prefixes (e.g., 'Dr.', 'Mr.')."},
	{Key: "organization", Label: "Organization", Description: "The company or organization name."},
	{Key: "title", Label: "Job Title", Description: "The job title or position."},
	{Key: "address", Label: "Address (Street, City, ZIP)", Description: "The full work address as a single string (e.g., 'Street, City, Postal Code')."},
	{Key: "workPhone", Label: "Work Phone", Description: "The primary work phone number."},
	{Key: "mobilePhone", Label: "Mobile Phone", Description: "The mobile phone number."},
	{Key: "email", Label: "Email", Description: "The email address.", Required: true},
	{Key: "website", Label: "Website", Description: "The company or personal website URL."},
}

// ContactFields returns the field descriptors in record order.
func ContactFields() []FieldInfo {
	return append([]FieldInfo(nil), contactFields...)
}

// ExampleContact returns a populated sample record, used as the initial form state.
func ExampleContact() Contact {
	return Contact{
		FullName:     "Max Mustermann",
		FirstName:    "Max",
		LastName:     "Mustermann",
		Prefix:       "Dr.",
		Organization: "Musterfirma GmbH",
		Title:        "Muster-Position",
		Address:      "Musterstr. 1, Musterstadt, 12345",
		WorkPhone:    "+49123456789",
		MobilePhone:  "+4917698765432",
		Email:        "max.mustermann@musterfirma.de",
		Website:      "www.musterfirma.de",
	}
}

// EmptyContact returns a record with every field set to "".
func EmptyContact() Contact {
	return Contact{}
}

// field returns a pointer to the struct field behind key.
func (c *Contact) field(key string) (*string, error) {
	switch key {
	case "fullName":
		return &c.FullName, nil
	case "firstName":
		return &c.FirstName, nil
	case "lastName":
		return &c.LastName, nil
	case "prefix":
		return &c.Prefix, nil
	case "organization":
		return &c.Organization, nil
	case "title":
		return &c.Title, nil
	case "address":
		return &c.Address, nil
	case "workPhone":
		return &c.WorkPhone, nil
	case "mobilePhone":
		return &c.MobilePhone, nil
	case "email":
		return &c.Email, nil
	case "website":
		return &c.Website, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// Get returns the value stored under the JSON key.
func (c Contact) Get(key string) (string, error) {
	p, err := c.field(key)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set stores value under the JSON key.
func (c *Contact) Set(key, value string) error {
	p, err := c.field(key)
	if err != nil {
		return err
	}
	*p = value
	return nil
}
