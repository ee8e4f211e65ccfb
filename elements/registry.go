package elements

import (
	"github.com/reoring/cardkit"
)

// Family names used as registry labels.
const (
	FamilyElements = "element"
	FamilyActions  = "action"
)

// NewElementRegistry returns a registry with every built-in body element.
func NewElementRegistry(unknown cardkit.UnknownPolicy) *cardkit.Registry {
	r := cardkit.NewRegistry(FamilyElements, unknown)
	r.Register(TypeTextBlock, cardkit.ParserOf(populateTextBlock))
	r.Register(TypeImage, cardkit.ParserOf(populateImage))
	r.Register(TypeContainer, cardkit.ParserOf(populateContainer))
	return r
}

// NewActionRegistry returns a registry with every built-in action.
func NewActionRegistry(unknown cardkit.UnknownPolicy) *cardkit.Registry {
	r := cardkit.NewRegistry(FamilyActions, unknown)
	r.Register(TypeOpenURL, cardkit.ParserOf(populateOpenURL))
	r.Register(TypeSubmit, cardkit.ParserOf(populateSubmit))
	return r
}

// Families pairs the two registries a card is parsed with.
type Families struct {
	Elements *cardkit.Registry
	Actions  *cardkit.Registry
}

// NewFamilies returns the built-in registries, both using unknown.
func NewFamilies(unknown cardkit.UnknownPolicy) Families {
	return Families{
		Elements: NewElementRegistry(unknown),
		Actions:  NewActionRegistry(unknown),
	}
}
