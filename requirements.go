package cardkit

import "sort"

// MeetsRequirements reports whether hostProvides, a map of capability name to
// the host's version, satisfies every requirement of the element.
func (b *BaseElement) MeetsRequirements(hostProvides map[string]string) bool {
	for name, min := range b.requires {
		if !capabilityMet(hostProvides, name, min) {
			return false
		}
	}
	return true
}

// UnmetRequirements returns the sorted capability names of e that
// hostProvides lacks or provides at a lower (or unparsable) version.
func UnmetRequirements(e Element, hostProvides map[string]string) []string {
	var out []string
	for name, min := range e.Requires() {
		if !capabilityMet(hostProvides, name, min) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func capabilityMet(hostProvides map[string]string, name string, min SemanticVersion) bool {
	raw, ok := hostProvides[name]
	if !ok {
		return false
	}
	have, err := ParseSemanticVersion(raw)
	if err != nil {
		return false
	}
	return have.AtLeast(min)
}

// Renderable reports whether a host with hostProvides can render e itself,
// ignoring its fallback. UnknownElement is never renderable.
func Renderable(e Element, hostProvides map[string]string) bool {
	if _, unknown := e.(*UnknownElement); unknown {
		return false
	}
	return e.MeetsRequirements(hostProvides)
}

// Resolve walks the fallback chain of e and returns the first element a host
// with hostProvides can render. ok is false when the chain ends in a drop or
// without fallback; the caller then applies its own fallback.
func Resolve(e Element, hostProvides map[string]string) (el Element, ok bool) {
	for cur := e; cur != nil; cur = cur.FallbackContent() {
		if Renderable(cur, hostProvides) {
			return cur, true
		}
		if cur.FallbackType() != FallbackContent {
			return nil, false
		}
	}
	return nil, false
}

// AppendResources appends the resources of e and of its fallback subtree.
func AppendResources(dst []RemoteResourceInformation, e Element) []RemoteResourceInformation {
	for cur := e; cur != nil; cur = cur.FallbackContent() {
		dst = cur.AppendResourceInformation(dst)
	}
	return dst
}
