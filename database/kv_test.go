package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", `{"a":1}`))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is not an error
	require.NoError(t, kv.Delete("k"))
}

func TestFileKV(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("invoiceflow-invoices", `[]`))
	v, ok, err := kv.Get("invoiceflow-invoices")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, kv.Delete("invoiceflow-invoices"))
	_, ok, err = kv.Get("invoiceflow-invoices")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Delete("invoiceflow-invoices"))
}

func TestFileKVSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first := NewFileKV(dir)
	require.NoError(t, first.Set("slot", `"hello"`))

	second := NewFileKV(dir)
	v, ok, err := second.Get("slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"hello"`, v)
}
