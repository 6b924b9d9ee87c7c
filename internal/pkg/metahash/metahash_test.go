//go:build unit

package metahash_test

import (
	"strings"
	"testing"

	"coffee-verifier/internal/pkg/metahash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	type doc struct {
		BatchID   int64  `json:"batchId"`
		Packaging string `json:"packaging"`
	}

	a, err := metahash.Compute(doc{BatchID: 42, Packaging: "250g"})
	require.NoError(t, err)
	b, err := metahash.Compute(doc{BatchID: 42, Packaging: "250g"})
	require.NoError(t, err)
	c, err := metahash.Compute(doc{BatchID: 42, Packaging: "500g"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "Qm"), "expected CIDv0, got %s", a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, metahash.IsCID(a))
}

func TestIsCID(t *testing.T) {
	assert.False(t, metahash.IsCID(""))
	assert.False(t, metahash.IsCID("not-a-cid"))
	assert.True(t, metahash.IsCID("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"))
}
