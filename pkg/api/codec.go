// Package api defines the roommates RPC surface: message types, procedure
// names, and Connect handler and client constructors.
//
// Messages are plain Go structs carried as JSON, so every handler and client
// built here installs Codec in place of Connect's protobuf-based JSON codec.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals messages with encoding/json under the "json" codec name.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}
