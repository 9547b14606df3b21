package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 1)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 2)

	value, ok := lhm.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, lhm.Len())
}

func TestLinkedHashMap_ToJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("def", 2)

	bs, err := lhm.ToJSON()
	assert.NoError(t, err)

	assert.Equal(t, []byte(`{"abc":1,"def":2}`), bs)
}

func TestLinkedHashMap_NestedJSON(t *testing.T) {
	inner := NewLinkedHashMap[string, any]()
	inner.Put("z", 26)
	inner.Put("a", 1)

	outer := NewLinkedHashMap[string, any]()
	outer.Put("inner", inner)

	bs, err := outer.ToJSON()
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"inner":{"z":26,"a":1}}`), bs)
}
