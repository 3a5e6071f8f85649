package transaction

import (
	"encoding/json"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// NamespaceParent is the 8 byte field of a namespace registration whose
// meaning depends on the registration type that follows it.
type NamespaceParent interface {
	wire.Serializer
	RegistrationType() model.NamespaceRegistrationType
}

// RootNamespace registers a root namespace for a number of blocks.
type RootNamespace struct {
	Duration model.BlockDuration `json:"duration"`
}

func (RootNamespace) RegistrationType() model.NamespaceRegistrationType {
	return model.NamespaceRoot
}

func (p RootNamespace) Size() int { return 8 }

func (p RootNamespace) Serialize(w *wire.Writer) { p.Duration.Serialize(w) }

// ChildNamespace registers a namespace under an existing parent.
type ChildNamespace struct {
	ParentID model.NamespaceID `json:"parentId"`
}

func (ChildNamespace) RegistrationType() model.NamespaceRegistrationType {
	return model.NamespaceChild
}

func (p ChildNamespace) Size() int { return 8 }

func (p ChildNamespace) Serialize(w *wire.Writer) { p.ParentID.Serialize(w) }

var namespaceParents = wire.NewUnion("namespace registration", map[model.NamespaceRegistrationType]wire.DecodeFunc[NamespaceParent]{
	model.NamespaceRoot: func(r *wire.Reader) NamespaceParent {
		return RootNamespace{Duration: model.ReadBlockDuration(r)}
	},
	model.NamespaceChild: func(r *wire.Reader) NamespaceParent {
		return ChildNamespace{ParentID: model.ReadNamespaceID(r)}
	},
})

// NamespaceRegistrationBody registers a root or child namespace.
type NamespaceRegistrationBody struct {
	Parent NamespaceParent   `json:"registration"`
	ID     model.NamespaceID `json:"id"`
	Name   string            `json:"name"`
}

func (b NamespaceRegistrationBody) Type() model.EntityType {
	return model.EntityNamespaceRegistration
}

// RegistrationType returns the type of the active parent branch. ok is false
// when no branch is set.
func (b NamespaceRegistrationBody) RegistrationType() (typ model.NamespaceRegistrationType, ok bool) {
	if b.Parent == nil {
		return 0, false
	}
	return b.Parent.RegistrationType(), true
}

func (b NamespaceRegistrationBody) Size() int { return 8 + 8 + 1 + 1 + len(b.Name) }

func (b NamespaceRegistrationBody) Serialize(w *wire.Writer) {
	if b.Parent == nil {
		w.Fail(wire.ErrNoActiveVariant)
		return
	}
	b.Parent.Serialize(w)
	b.ID.Serialize(w)
	wire.WriteEnum8(w, b.Parent.RegistrationType())
	w.Count(wire.Width8, len(b.Name))
	w.Fixed([]byte(b.Name))
}

func (b NamespaceRegistrationBody) MarshalJSON() ([]byte, error) {
	type fields NamespaceRegistrationBody
	var typ *model.NamespaceRegistrationType
	if t, ok := b.RegistrationType(); ok {
		typ = &t
	}
	return json.Marshal(struct {
		RegistrationType *model.NamespaceRegistrationType `json:"registrationType,omitempty"`
		fields
	}{typ, fields(b)})
}

// Parent returns the registration branch of b as T.
func Parent[T NamespaceParent](b NamespaceRegistrationBody) (T, error) {
	return wire.As[T](b.Parent)
}

func readNamespaceRegistration(r *wire.Reader) Body {
	var b NamespaceRegistrationBody
	parent := r.Region(8, wire.ErrTruncatedInput)
	b.ID = model.ReadNamespaceID(r)
	typ := wire.ReadEnum8[model.NamespaceRegistrationType](r)
	nameSize := r.Count(wire.Width8)
	b.Name = string(r.Bytes(int(nameSize)))
	if r.Err() != nil {
		return b
	}
	b.Parent = namespaceParents.Decode(parent, typ)
	r.Join(parent)
	return b
}

// AddressAliasBody attaches a namespace to an address.
type AddressAliasBody struct {
	NamespaceID model.NamespaceID `json:"namespaceId"`
	Address     model.Address     `json:"address"`
	AliasAction model.AliasAction `json:"aliasAction"`
}

func (b AddressAliasBody) Type() model.EntityType { return model.EntityAddressAlias }

func (b AddressAliasBody) Size() int { return 8 + model.AddressSize + 1 }

func (b AddressAliasBody) Serialize(w *wire.Writer) {
	b.NamespaceID.Serialize(w)
	b.Address.Serialize(w)
	wire.WriteEnum8(w, b.AliasAction)
}

func readAddressAlias(r *wire.Reader) Body {
	return AddressAliasBody{
		NamespaceID: model.ReadNamespaceID(r),
		Address:     model.ReadAddress(r),
		AliasAction: wire.ReadEnum8[model.AliasAction](r),
	}
}

// MosaicAliasBody attaches a namespace to a mosaic.
type MosaicAliasBody struct {
	NamespaceID model.NamespaceID `json:"namespaceId"`
	MosaicID    model.MosaicID    `json:"mosaicId"`
	AliasAction model.AliasAction `json:"aliasAction"`
}

func (b MosaicAliasBody) Type() model.EntityType { return model.EntityMosaicAlias }

func (b MosaicAliasBody) Size() int { return 8 + 8 + 1 }

func (b MosaicAliasBody) Serialize(w *wire.Writer) {
	b.NamespaceID.Serialize(w)
	b.MosaicID.Serialize(w)
	wire.WriteEnum8(w, b.AliasAction)
}

func readMosaicAlias(r *wire.Reader) Body {
	return MosaicAliasBody{
		NamespaceID: model.ReadNamespaceID(r),
		MosaicID:    model.ReadMosaicID(r),
		AliasAction: wire.ReadEnum8[model.AliasAction](r),
	}
}
