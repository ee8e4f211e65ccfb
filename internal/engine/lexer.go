package engine

// KeyTracker tells object keys apart from string values for decoders whose
// token streams do not distinguish them (encoding/json, go-json).
type KeyTracker struct {
	stack []trackFrame
}

type trackFrame struct {
	object       bool
	expectingKey bool
}

// Open records the start of an object or array and returns its token kind.
func (t *KeyTracker) Open(object bool) Kind {
	t.stack = append(t.stack, trackFrame{object: object, expectingKey: object})
	if object {
		return KindBeginObject
	}
	return KindBeginArray
}

// Close records the end of the innermost container and returns its token kind.
func (t *KeyTracker) Close() Kind {
	kind := KindEndArray
	if n := len(t.stack); n > 0 {
		if t.stack[n-1].object {
			kind = KindEndObject
		}
		t.stack = t.stack[:n-1]
	}
	t.valueDone()
	return kind
}

// String classifies a string token as a key or a value.
func (t *KeyTracker) String() Kind {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	t.valueDone()
	return KindString
}

// Scalar records a non-string scalar value.
func (t *KeyTracker) Scalar() { t.valueDone() }

func (t *KeyTracker) valueDone() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
