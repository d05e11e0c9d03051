package paillier

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode sorts map keys so a key always encodes to the same bytes.
var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// MarshalPublicKey encodes EncodePublicKey(pk) as a CBOR map.
func MarshalPublicKey(pk *PublicKey) ([]byte, error) {
	data, err := encMode.Marshal(EncodePublicKey(pk))
	if err != nil {
		return nil, opError("MarshalPublicKey", err)
	}
	return data, nil
}

// MarshalPrivateKey encodes EncodePrivateKey(sk) as a CBOR map.
func MarshalPrivateKey(sk *PrivateKey) ([]byte, error) {
	data, err := encMode.Marshal(EncodePrivateKey(sk))
	if err != nil {
		return nil, opError("MarshalPrivateKey", err)
	}
	return data, nil
}

// UnmarshalPublicKey decodes bytes produced by MarshalPublicKey.
func UnmarshalPublicKey(data []byte) (*PublicKey, error) {
	const op = "UnmarshalPublicKey"
	m, err := decodeMap(op, data)
	if err != nil {
		return nil, err
	}
	return decodePublicKey(op, m)
}

// UnmarshalPrivateKey decodes bytes produced by MarshalPrivateKey.
func UnmarshalPrivateKey(data []byte) (*PrivateKey, error) {
	m, err := decodeMap("UnmarshalPrivateKey", data)
	if err != nil {
		return nil, err
	}
	return DecodePrivateKey(m)
}

// decodeMap turns a CBOR map into a Map. Byte strings become []byte and the
// FieldPK entry is decoded recursively; any other value is rejected.
func decodeMap(op string, data []byte) (Map, error) {
	var raw map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, errorf(op, "%w: %v", ErrDecode, err)
	}
	m := make(Map, len(raw))
	for field, value := range raw {
		if field == FieldPK {
			nested, err := decodeMap(op, value)
			if err != nil {
				return nil, err
			}
			m[field] = nested
			continue
		}
		var b []byte
		if err := cbor.Unmarshal(value, &b); err != nil {
			return nil, errorf(op, "%w: field %q: %v", ErrDecode, field, err)
		}
		m[field] = b
	}
	return m, nil
}
