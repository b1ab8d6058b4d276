package ofpact

import (
	"strings"

	"github.com/aagrwal5/openvswitch/oxm"
)

func FormatSetField(a *SetField, s *strings.Builder) {
	f := a.Dst.Field
	s.WriteString("set_field:")
	s.WriteString(f.FormatValue(a.Value))
	s.WriteString("->")
	s.WriteString(f.Name)
}

func (self *SetField) String() string {
	var s strings.Builder
	FormatSetField(self, &s)
	return s.String()
}

// ParseSetField reads "value->field" and appends the action to acts. A
// leading "set_field:" is accepted so that formatted actions read back.
// Nothing is appended when an error is returned.
func ParseSetField(reg *oxm.Registry, arg string, acts *List) *ConfigError {
	orig := strings.TrimPrefix(arg, "set_field:")

	delim := strings.Index(orig, "->")
	if delim < 0 {
		return configError(arg, "%s: missing `->'", orig)
	}
	key := orig[delim+len("->"):]
	if key == "" {
		return configError(arg, "%s: missing field name following `->'", orig)
	}

	f := reg.ByName(key)
	if f == nil {
		return configError(arg, "%s is not valid oxm field name", key)
	}
	if !SetFieldAllowed(f) {
		return configError(arg, "%s is not allowed to set", key)
	}

	value := orig[:delim]
	v, err := f.ParseValue(value)
	if err != nil {
		return configError(arg, "%s", err)
	}
	if !f.IsValueValid(v) {
		return configError(arg, "%s is not valid value for field %s", value, key)
	}

	a := acts.PutSetField()
	InitSetField(a, f)
	a.Value = v
	return nil
}
