// Package metahash derives IPFS content identifiers for verification metadata documents.
package metahash

import (
	"encoding/json"

	"github.com/ipfs/go-cid"
)

// Compute returns the CIDv0 ("Qm...") of the JSON encoding of doc.
// encoding/json orders map keys and struct fields deterministically, so equal documents hash equally.
func Compute(doc any) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	c, err := cid.V0Builder{}.Sum(payload)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

func IsCID(s string) bool {
	_, err := cid.Decode(s)
	return err == nil
}
