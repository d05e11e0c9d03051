package paillier

import "math/big"

// Serialized field names. They are part of the persisted format and must not
// change.
const (
	FieldN      = "n"
	FieldN2     = "n2"
	FieldG      = "g"
	FieldLambda = "lambda"
	FieldMu     = "mu"
	FieldP      = "p"
	FieldQ      = "q"
	FieldPK     = "pk"
)

// Map is the serialized form of a key. Integer fields hold big-endian,
// minimal-length unsigned bytes (empty for zero); the private key's FieldPK
// holds a nested Map.
type Map map[string]any

// EncodePublicKey serializes pk.
func EncodePublicKey(pk *PublicKey) Map {
	return Map{
		FieldN:  pk.n.Bytes(),
		FieldN2: pk.n2.Bytes(),
		FieldG:  pk.g.Bytes(),
	}
}

// EncodePrivateKey serializes sk together with its public key.
func EncodePrivateKey(sk *PrivateKey) Map {
	return Map{
		FieldLambda: sk.lambda.Bytes(),
		FieldMu:     sk.mu.Bytes(),
		FieldP:      sk.p.Bytes(),
		FieldQ:      sk.q.Bytes(),
		FieldPK:     EncodePublicKey(sk.pk),
	}
}

// DecodePublicKey rebuilds a public key. A missing or non-byte field fails
// with ErrDecode; fields that decode but do not form a key fail with
// ErrInvalidKey.
func DecodePublicKey(m Map) (*PublicKey, error) {
	const op = "DecodePublicKey"
	return decodePublicKey(op, m)
}

func decodePublicKey(op string, m Map) (*PublicKey, error) {
	if m == nil {
		return nil, errorf(op, "%w: nil map", ErrDecode)
	}
	n, err := m.integer(op, FieldN)
	if err != nil {
		return nil, err
	}
	n2, err := m.integer(op, FieldN2)
	if err != nil {
		return nil, err
	}
	g, err := m.integer(op, FieldG)
	if err != nil {
		return nil, err
	}
	return newPublicKey(op, n, n2, g)
}

// DecodePrivateKey rebuilds a private key and its nested public key.
func DecodePrivateKey(m Map) (*PrivateKey, error) {
	const op = "DecodePrivateKey"
	if m == nil {
		return nil, errorf(op, "%w: nil map", ErrDecode)
	}
	fields := make(map[string]*big.Int, 4)
	for _, name := range []string{FieldLambda, FieldMu, FieldP, FieldQ} {
		v, err := m.integer(op, name)
		if err != nil {
			return nil, err
		}
		fields[name] = v
	}
	nested, err := m.nested(op, FieldPK)
	if err != nil {
		return nil, err
	}
	pk, err := decodePublicKey(op, nested)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(fields[FieldLambda], fields[FieldMu], fields[FieldP], fields[FieldQ], pk)
}

func (m Map) integer(op, field string) (*big.Int, error) {
	v, ok := m[field]
	if !ok {
		return nil, errorf(op, "%w: missing field %q", ErrDecode, field)
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, errorf(op, "%w: field %q is %T, want bytes", ErrDecode, field, v)
	}
	return new(big.Int).SetBytes(b), nil
}

func (m Map) nested(op, field string) (Map, error) {
	v, ok := m[field]
	if !ok {
		return nil, errorf(op, "%w: missing field %q", ErrDecode, field)
	}
	switch t := v.(type) {
	case Map:
		return t, nil
	case map[string]any:
		return Map(t), nil
	default:
		return nil, errorf(op, "%w: field %q is %T, want map", ErrDecode, field, v)
	}
}
