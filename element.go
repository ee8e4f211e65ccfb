package cardkit

import (
	"reflect"
	"sync/atomic"
)

// InternalID is a process-unique element identity, independent of the
// author-supplied id.
type InternalID uint64

var lastInternalID atomic.Uint64

// NextInternalID returns a fresh InternalID. Safe for concurrent use.
func NextInternalID() InternalID { return InternalID(lastInternalID.Add(1)) }

// FallbackType says what a host should do with an element it cannot render.
type FallbackType int

const (
	FallbackNone FallbackType = iota
	FallbackDrop
	FallbackContent
)

func (f FallbackType) String() string {
	switch f {
	case FallbackDrop:
		return "drop"
	case FallbackContent:
		return "content"
	default:
		return "none"
	}
}

// RemoteResourceInformation describes a resource a host may prefetch.
type RemoteResourceInformation struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
}

// Element is one node of a parsed card. Concrete types embed BaseElement and
// override SerializeToJSONValue, AppendResourceInformation and, when they
// need to, ID/SetID. The base contract assigns the id through SetID, but the
// base serializer writes the stored id, so overriding types also override
// SerializeToJSONValue.
type Element interface {
	ElementTypeString() string
	ID() string
	SetID(id string)
	InternalID() InternalID
	AdditionalProperties() map[string]any
	SetAdditionalProperties(props map[string]any)
	Requires() map[string]SemanticVersion
	FallbackType() FallbackType
	FallbackContent() Element
	MeetsRequirements(hostProvides map[string]string) bool
	SerializeToJSONValue() (map[string]any, error)
	AppendResourceInformation(dst []RemoteResourceInformation) []RemoteResourceInformation
	// Base exposes the embedded base so the contract can populate it.
	Base() *BaseElement
}

// isNilElement reports whether e holds no element, either as a nil interface
// or as a typed nil pointer.
func isNilElement(e Element) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// BaseElement carries the state shared by every element. Construct it with
// NewBaseElement so it receives an InternalID.
type BaseElement struct {
	typeString      string
	id              string
	internalID      InternalID
	additional      map[string]any
	requires        map[string]SemanticVersion
	fallbackType    FallbackType
	fallbackContent Element
}

// NewBaseElement returns an empty base for an element of the given type.
func NewBaseElement(typeString string) BaseElement {
	return BaseElement{typeString: typeString, internalID: NextInternalID()}
}

func (b *BaseElement) Base() *BaseElement { return b }

func (b *BaseElement) ElementTypeString() string { return b.typeString }

func (b *BaseElement) SetElementTypeString(s string) { b.typeString = s }

func (b *BaseElement) ID() string { return b.id }

func (b *BaseElement) SetID(id string) { b.id = id }

func (b *BaseElement) InternalID() InternalID { return b.internalID }

// AdditionalProperties returns the keys the element's parser did not consume.
func (b *BaseElement) AdditionalProperties() map[string]any { return b.additional }

// SetAdditionalProperties replaces the passthrough properties without
// validation.
func (b *BaseElement) SetAdditionalProperties(props map[string]any) { b.additional = props }

// Requires returns the capability requirements. The map is owned by the
// element.
func (b *BaseElement) Requires() map[string]SemanticVersion { return b.requires }

func (b *BaseElement) FallbackType() FallbackType { return b.fallbackType }

// FallbackContent is non-nil exactly when FallbackType is FallbackContent.
func (b *BaseElement) FallbackContent() Element { return b.fallbackContent }

// SetFallbackDrop marks the element to be dropped when it cannot render.
func (b *BaseElement) SetFallbackDrop() {
	b.fallbackType = FallbackDrop
	b.fallbackContent = nil
}

// SetFallbackContent installs e as the substitute; nil clears the fallback.
func (b *BaseElement) SetFallbackContent(e Element) {
	if e == nil {
		b.fallbackType = FallbackNone
		b.fallbackContent = nil
		return
	}
	b.fallbackType = FallbackContent
	b.fallbackContent = e
}

// SetRequirement adds or replaces one capability requirement.
func (b *BaseElement) SetRequirement(capability string, min SemanticVersion) {
	if b.requires == nil {
		b.requires = map[string]SemanticVersion{}
	}
	b.requires[capability] = min
}

// AppendResourceInformation contributes nothing for the base; see
// AppendResources for walking an element together with its fallback.
func (b *BaseElement) AppendResourceInformation(dst []RemoteResourceInformation) []RemoteResourceInformation {
	return dst
}
