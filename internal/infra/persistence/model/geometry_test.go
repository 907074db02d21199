package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWKB_Scan(t *testing.T) {
	data, err := wkb.Marshal(orb.LineString{{85.31, 27.7}, {85.32, 27.71}})
	require.NoError(t, err)

	var g WKB
	require.NoError(t, g.Scan(data))
	assert.Equal(t, orb.LineString{{85.31, 27.7}, {85.32, 27.71}}, g.Geometry)
	assert.Nil(t, g.Point())
}

func TestWKB_ScanPointAndNull(t *testing.T) {
	data, err := wkb.Marshal(orb.Point{1, 2})
	require.NoError(t, err)

	var g WKB
	require.NoError(t, g.Scan(data))
	require.NotNil(t, g.Point())
	assert.Equal(t, orb.Point{1, 2}, *g.Point())

	require.NoError(t, g.Scan(nil))
	assert.Nil(t, g.Geometry)
}

func TestWKB_ScanRejectsStrings(t *testing.T) {
	var g WKB
	assert.Error(t, g.Scan("0101000000"))
}
