package components

import "github.com/yohamta/donburi"

// ContactPair identifies two bodies in a fixed role order.
type ContactPair struct {
	A, B donburi.Entity
}

// ContactsData remembers which pairs overlapped last tick so a contact is reported only when it begins.
type ContactsData struct {
	Overlapping map[ContactPair]struct{}
}

var Contacts = donburi.NewComponentType[ContactsData]()
