package protocol

// Decodable restores itself from wire bytes.
type Decodable interface {
	Decode(data []byte) error
}

// Encodable renders itself as wire bytes.
type Encodable interface {
	Encode() ([]byte, error)
}

// Codec both encodes and decodes.
type Codec interface {
	Decodable
	Encodable
}

// Both wire messages satisfy the full codec contract.
var (
	_ Codec = (*ValidationRequest)(nil)
	_ Codec = (*ValidationResponse)(nil)
)
