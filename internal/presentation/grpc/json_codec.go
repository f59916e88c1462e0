package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec serialises the wire messages in proto.go, which carry json tags
// instead of generated protobuf marshalling. Registered under the "json"
// content subtype; clients must dial with the matching call option.
type jsonCodec struct{}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// Name identifies the codec in the grpc content-type negotiation.
func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
