package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats an ordered map into a single bracketed string, keeping the insertion order.
// Example: "[from=Walk to=Ladder tick=12]".
func OrderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for el := data.Front(); el != nil; el = el.Next() {
		if el != data.Front() {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", el.Key, el.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// KeyValsToMap builds an ordered map from alternating keys and values. A trailing key without a value
// is ignored.
func KeyValsToMap(kv ...any) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}
		m.Set(key, kv[i+1])
	}
	return m
}
