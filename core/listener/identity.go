package listener

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Identifiable is implemented by owners that carry their own identity token.
type Identifiable interface {
	GUID() string
}

// IdentityFunc derives the stable identity token of an owner.
type IdentityFunc func(owner any) (string, error)

// Object is an embeddable identity for owner types. The GUID is a random
// UUID generated on first use. Embed it by value and pass the owner by
// pointer; an Object must not be copied after first use.
//
//	type Document struct {
//		listener.Object
//		Title string
//	}
//
//	doc := &Document{Title: "draft"}
//	reg.AddListener(doc, "didSave", nil, listener.Named("Reindex"))
type Object struct {
	once sync.Once
	guid string
}

// GUID returns the object's identity token.
func (o *Object) GUID() string {
	o.once.Do(func() {
		o.guid = uuid.NewString()
	})
	return o.guid
}

// GUIDFor returns the identity token the default identity function assigns
// to owner: its own GUID when it is Identifiable, otherwise its type and
// address when it is a pointer, map or channel.
func GUIDFor(owner any) (string, error) {
	if owner == nil {
		return "", ErrNilOwner
	}

	v := reflect.ValueOf(owner)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return "", ErrNilOwner
		}
	}

	if id, ok := owner.(Identifiable); ok {
		if guid := id.GUID(); guid != "" {
			return guid, nil
		}
		return "", fmt.Errorf("%w: %T returned an empty GUID", ErrUnidentifiableOwner, owner)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		// Zero-sized values may share an address; such owners should embed Object.
		return fmt.Sprintf("%s@%#x", v.Type(), v.Pointer()), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnidentifiableOwner, owner)
}
