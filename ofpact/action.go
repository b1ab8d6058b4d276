/*
Package ofpact holds the switch-internal form of flow actions.

Actions decoded from the wire, parsed from operator text, or built by code all
end up as records in a List. A record is usable only after it passed the check
of its kind.
*/
package ofpact

import (
	"fmt"

	"github.com/aagrwal5/openvswitch/oxm"
	"github.com/op/go-logging"
)

var logger = logging.MustGetLogger("ofpact")

type Kind uint8

const (
	KindSetField Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindSetField:
		return "set_field"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Action is one of the record types of this package.
type Action interface {
	Kind() Kind
	ofpact()
}

// SubField is a bit range of a field.
type SubField struct {
	Field *oxm.Field
	Ofs   int
	NBits int
}

// Check verifies the range lies inside the field.
func (self SubField) Check() error {
	if self.Field == nil {
		return badArgument(BadSubField, "no field")
	}
	if self.Ofs < 0 || self.NBits <= 0 || self.Ofs+self.NBits > self.Field.NBits {
		return badArgument(BadSubField, "%s[%d..%d] exceeds %d bits",
			self.Field.Name, self.Ofs, self.Ofs+self.NBits-1, self.Field.NBits)
	}
	return nil
}

// SetField overwrites a whole field with Value.
type SetField struct {
	Dst   SubField
	Value oxm.Value
}

func (*SetField) Kind() Kind { return KindSetField }
func (*SetField) ofpact()    {}

// Flow is the match context of the flow an action list belongs to.
type Flow struct {
	Match oxm.Oxm
}

// List is an append-only buffer of actions owned by the caller.
type List []Action

func (self *List) PutSetField() *SetField {
	a := new(SetField)
	*self = append(*self, a)
	return a
}

// Truncate drops the records appended after the list had n entries.
func (self *List) Truncate(n int) {
	for i := n; i < len(*self); i++ {
		(*self)[i] = nil
	}
	*self = (*self)[:n]
}
