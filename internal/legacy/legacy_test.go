// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package legacy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubCodec struct{}

func (stubCodec) Decode(compressed []byte, outLen int) ([]byte, error) { return nil, nil }
func (stubCodec) Encode(raw []byte) []byte                             { return nil }

func TestIsLegacyName(t *testing.T) {
	require.True(t, IsLegacyName("LEGACY_MAP01"))
	require.True(t, IsLegacyName("OLD_SOUND"))
	require.False(t, IsLegacyName("MAP01"))
}

func TestSelect_ReturnsPrimaryForOrdinaryNames(t *testing.T) {
	primary := stubCodec{}
	got, err := Select("MAP01", primary)
	require.NoError(t, err)
	require.Equal(t, primary, got)
}

func TestSelect_RejectsLegacyNames(t *testing.T) {
	_, err := Select("LEGACY_MAP01", stubCodec{})
	require.ErrorIs(t, err, ErrLegacyUnsupported)
}
