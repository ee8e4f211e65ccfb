package elements

import (
	"errors"

	"github.com/reoring/cardkit"
)

// Parent is implemented by elements holding child elements.
type Parent interface {
	Children() []cardkit.Element
}

// SkipChildren may be returned by a WalkFunc to skip the children of the
// element just visited.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every element visited by Walk. path locates the
// element in the card document.
type WalkFunc func(path cardkit.Pointer, e cardkit.Element) error

// Walk visits the body elements of c depth first, then its actions. Fallback
// content is not visited.
func (c *Card) Walk(fn WalkFunc) error {
	if err := walkList(cardkit.Pointer{"body"}, c.Body, fn); err != nil {
		return err
	}
	return walkList(cardkit.Pointer{"actions"}, c.Actions, fn)
}

func walkList(base cardkit.Pointer, els []cardkit.Element, fn WalkFunc) error {
	for i, e := range els {
		path := base.Index(i)
		err := fn(path, e)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if p, ok := e.(Parent); ok {
			if err := walkList(path.Field("items"), p.Children(), fn); err != nil {
				return err
			}
		}
	}
	return nil
}
