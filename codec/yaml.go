package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/viant/bridgely/wire"
)

// DecodeYAML decodes a YAML document into a wire value.
func DecodeYAML(data []byte) (wire.Value, error) {
	var holder interface{}
	if err := yaml.Unmarshal(data, &holder); err != nil {
		return wire.Null, err
	}
	return wire.FromInterface(normalizeYAML(holder))
}

// normalizeYAML rewrites loosely keyed maps into string-keyed ones so the
// wire model's closed type set applies.
func normalizeYAML(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for key, item := range actual {
			ret[key] = normalizeYAML(item)
		}
		return ret
	case map[interface{}]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for key, item := range actual {
			ret[fmt.Sprintf("%v", key)] = normalizeYAML(item)
		}
		return ret
	case []interface{}:
		ret := make([]interface{}, len(actual))
		for i, item := range actual {
			ret[i] = normalizeYAML(item)
		}
		return ret
	}
	return value
}
