// Package contacts is the static directory of mock payees used by the send flow.
package contacts

import "strings"

// Contact is a read-only payee.
type Contact struct {
	DisplayName   string
	Handle        string // $cashtag
	AvatarInitial string
	AvatarColor   string // lipgloss colour
}

// Directory is an ordered, immutable list of contacts.
type Directory struct {
	contacts []Contact
}

var defaultContacts = []Contact{
	{DisplayName: "Alex Rivera", Handle: "$alexr", AvatarInitial: "A", AvatarColor: "33"},
	{DisplayName: "Bianca Chen", Handle: "$biancac", AvatarInitial: "B", AvatarColor: "205"},
	{DisplayName: "Carlos Mendes", Handle: "$cmendes", AvatarInitial: "C", AvatarColor: "208"},
	{DisplayName: "Dana Whitfield", Handle: "$danaw", AvatarInitial: "D", AvatarColor: "86"},
	{DisplayName: "Eli Okafor", Handle: "$eliok", AvatarInitial: "E", AvatarColor: "141"},
	{DisplayName: "Fatima Noor", Handle: "$fnoor", AvatarInitial: "F", AvatarColor: "214"},
	{DisplayName: "Grace Kim", Handle: "$gracek", AvatarInitial: "G", AvatarColor: "42"},
	{DisplayName: "Hugo Laurent", Handle: "$hugol", AvatarInitial: "H", AvatarColor: "196"},
}

// Default returns the built-in directory.
func Default() *Directory {
	return New(defaultContacts)
}

// New creates a directory over a copy of cs.
func New(cs []Contact) *Directory {
	return &Directory{contacts: append([]Contact(nil), cs...)}
}

// All returns every contact in directory order.
func (d *Directory) All() []Contact {
	return append([]Contact(nil), d.contacts...)
}

// Len returns the number of contacts.
func (d *Directory) Len() int {
	return len(d.contacts)
}

// Filter returns the contacts whose display name or handle contains q,
// ignoring case, in directory order. An empty q returns all contacts.
func (d *Directory) Filter(q string) []Contact {
	if q == "" {
		return d.All()
	}
	q = strings.ToLower(q)
	out := make([]Contact, 0, len(d.contacts))
	for _, c := range d.contacts {
		if strings.Contains(strings.ToLower(c.DisplayName), q) ||
			strings.Contains(strings.ToLower(c.Handle), q) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds a contact by handle (case-insensitive).
func (d *Directory) Lookup(handle string) (Contact, bool) {
	for _, c := range d.contacts {
		if strings.EqualFold(c.Handle, handle) {
			return c, true
		}
	}
	return Contact{}, false
}
