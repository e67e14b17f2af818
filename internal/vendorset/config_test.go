package vendorset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	eps, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, eps)
}

func TestParseMultiple(t *testing.T) {
	eps, err := Parse("localhost:9100:Acme Supply, localhost:9200:Bolt Traders")
	require.NoError(t, err)
	require.Len(t, eps, 2)
	assert.Equal(t, Endpoint{Host: "localhost", Port: "9100", DisplayName: "Acme Supply"}, eps[0])
	assert.Equal(t, "localhost:9200", eps[1].Addr())
}

func TestParseMalformedEntry(t *testing.T) {
	_, err := Parse("localhost:9100")
	assert.Error(t, err)
}
