package dataset

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value with ordered object members.
// Numbers keep their literal text so rendering never changes precision.
// The zero Value is null.
type Value struct {
	kind    Kind
	text    string // string contents or number literal
	boolean bool
	items   []Value
	members []Member
}

// NewNull returns the null value.
func NewNull() Value { return Value{} }

// NewBool wraps a boolean.
func NewBool(b bool) Value { return Value{kind: Bool, boolean: b} }

// NewNumber wraps a JSON number literal. The literal is not validated.
func NewNumber(literal string) Value { return Value{kind: Number, text: literal} }

// NewString wraps a string.
func NewString(s string) Value { return Value{kind: String, text: s} }

// NewArray builds an array value.
func NewArray(items ...Value) Value { return Value{kind: Array, items: items} }

// NewObject builds an object value. Later duplicates of a key replace the
// earlier value but keep its position.
func NewObject(members ...Member) Value {
	obj := Value{kind: Object}
	for _, m := range members {
		obj.set(m.Key, m.Value)
	}
	return obj
}

func (v *Value) set(key string, val Value) {
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = val
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string contents or number literal. It is empty for
// other kinds.
func (v Value) Text() string { return v.text }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.boolean }

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Items returns the array items.
func (v Value) Items() []Value { return v.items }

// Members returns the object members in order.
func (v Value) Members() []Member { return v.members }

// Keys returns the object keys in order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get looks up an object member.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}
