package oxm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// String renders an unmasked oxm as name=value, or "?" when the header is
// not catalogued.
func (self *Registry) String(o Oxm) string {
	if !o.Ok() {
		return "?"
	}
	f := self.ByHeader(o.Header())
	if f == nil {
		return "?"
	}
	var v Value
	copy(f.Bytes(&v), o.Value())
	if m := o.Mask(); m != nil {
		var mv Value
		copy(f.Bytes(&mv), m)
		return fmt.Sprintf("%s=%s/%s", f.Name, f.FormatValue(v), f.FormatValue(mv))
	}
	return fmt.Sprintf("%s=%s", f.Name, f.FormatValue(v))
}

// ParseOne reads a single name=value token as an unmasked oxm. The token ends
// at the first ',' and the consumed length is returned with the oxm.
func (self *Registry) ParseOne(txt string) (Oxm, int, error) {
	if sep := strings.IndexRune(txt, ','); sep >= 0 {
		txt = txt[:sep]
	}
	labelIdx := strings.IndexRune(txt, '=')
	if labelIdx <= 0 {
		return nil, 0, errors.Errorf("parse failed %s", txt)
	}
	f := self.ByName(txt[:labelIdx])
	if f == nil {
		return nil, 0, errors.Errorf("unknown field %s", txt[:labelIdx])
	}
	hdr := f.OxmHeader
	if hdr == 0 {
		hdr = f.NxmHeader
	}
	v, err := f.ParseValue(txt[labelIdx+1:])
	if err != nil {
		return nil, 0, err
	}
	return MakeOxm(hdr, f.Bytes(&v)), len(txt), nil
}
