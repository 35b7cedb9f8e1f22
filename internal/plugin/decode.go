package plugin

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// DecodeStrict decodes node into out, failing on keys out does not declare.
// yaml.Node.Decode has no KnownFields switch, so the node is re-encoded and
// run through a strict decoder.
func DecodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}
