package rbtree

import "testing"

import s "github.com/bnclabs/gosettings"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/bnclabs/gorbt/api"

func TestNewTree(t *testing.T) {
	tree, err := NewTree("empty", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	assert.Equal(t, "empty", tree.ID())
	assert.Equal(t, Integer, tree.Kind())
	assert.Equal(t, int64(0), tree.Count())
	assert.Equal(t, int64(0), tree.Height())
	assert.True(t, tree.Isactive())
	assert.NoError(t, tree.Validate())

	if _, ok := tree.Min(); ok {
		t.Errorf("unexpected min on empty tree")
	} else if _, ok := tree.Max(); ok {
		t.Errorf("unexpected max on empty tree")
	}
}

func TestNewTreeInvalid(t *testing.T) {
	for _, kind := range []KeyKind{0, 4, 255} {
		tree, err := NewTree("invalid", kind, nil)
		if err != api.ErrorInvalidKeyType {
			t.Errorf("unexpected %v", err)
		} else if tree != nil {
			t.Errorf("unexpected tree for kind %v", kind)
		}
	}

	setts := s.Settings{"arena.capacity": int64(0)}
	_, err := NewTree("invalid", Integer, setts)
	assert.Equal(t, api.ErrorInvalidArgument, err)

	setts = s.Settings{"arena.prealloc": int64(-1)}
	_, err = NewTree("invalid", Integer, setts)
	assert.Equal(t, api.ErrorInvalidArgument, err)
}

func TestDestroy(t *testing.T) {
	tree, err := NewTree("destroy", Integer, nil)
	require.NoError(t, err)
	keys := intkeys(3, 1, 2)
	loadkeys(t, tree, keys)

	require.NoError(t, tree.Destroy())
	assert.Equal(t, api.ErrorInvalidArgument, tree.Destroy())
	assert.False(t, tree.Isactive())
	assert.Equal(t, int64(0), tree.Count())

	// keys are owned by application, left untouched.
	assert.Equal(t, int64(3), *keys[0])

	// every operation on a destroyed tree is rejected.
	x := int64(10)
	assert.Equal(t, api.ErrorInvalidArgument, tree.Insert(&x))
	assert.Equal(t, api.ErrorInvalidArgument, tree.Delete(keys[0]))
	assert.Equal(t, api.ErrorInvalidArgument, tree.SetData("data"))
	assert.Equal(t, api.ErrorInvalidArgument, tree.Validate())
	assert.False(t, tree.Has(keys[0]))
	_, err = tree.DeleteMin()
	assert.Equal(t, api.ErrorInvalidArgument, err)
	_, err = tree.Stats()
	assert.Equal(t, api.ErrorInvalidArgument, err)
	for range tree.Inorder() {
		t.Errorf("unexpected key from destroyed tree")
	}
}

func TestNilTree(t *testing.T) {
	var tree *Tree
	x := int64(10)

	assert.Equal(t, api.ErrorInvalidArgument, tree.Insert(&x))
	assert.Equal(t, api.ErrorInvalidArgument, tree.Delete(&x))
	assert.Equal(t, api.ErrorInvalidArgument, tree.Destroy())
	assert.Equal(t, api.ErrorInvalidArgument, tree.SetData(1))
	assert.False(t, tree.Has(&x))
	assert.Equal(t, int64(0), tree.Count())
	assert.Equal(t, "", tree.ID())
	assert.Nil(t, tree.Data())
}

func TestData(t *testing.T) {
	tree, err := NewTree("data", ByteString, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	assert.Nil(t, tree.Data())
	assert.Equal(t, api.ErrorInvalidArgument, tree.SetData(nil))
	assert.Nil(t, tree.Data())

	data := map[string]int{"hits": 1}
	require.NoError(t, tree.SetData(data))
	assert.Equal(t, data, tree.Data())
	require.NoError(t, tree.SetData("replaced"))
	assert.Equal(t, "replaced", tree.Data())
}

func TestIntegerScenario(t *testing.T) {
	tree, err := NewTree("integer", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	keys := intkeys(10, 12, 2, 14, 5, 16, 7, 8, 19, 4, 3)
	loadkeys(t, tree, keys)

	ref := []int64{2, 3, 4, 5, 7, 8, 10, 12, 14, 16, 19}
	assert.Equal(t, ref, inorderints(tree))
	assert.Equal(t, int64(len(keys)), tree.Count())
	assert.Equal(t, int64(4), tree.Height())
	for _, key := range keys {
		if !tree.Has(key) {
			t.Errorf("expected %v", *key)
		}
	}
	if key, ok := tree.Min(); !ok || *(key.(*int64)) != 2 {
		t.Errorf("unexpected %v", key)
	} else if key, ok := tree.Max(); !ok || *(key.(*int64)) != 19 {
		t.Errorf("unexpected %v", key)
	}
}

func TestDeletionScenario(t *testing.T) {
	tree, err := NewTree("deletion", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	keys := intkeys(10, 12, 2, 14, 5, 16, 7, 8, 19, 4, 3)
	loadkeys(t, tree, keys)

	require.NoError(t, tree.Delete(keys[0])) // 10, root with two children
	require.NoError(t, tree.Validate())
	require.NoError(t, tree.Delete(keys[2])) // 2, red leaf
	require.NoError(t, tree.Validate())
	require.NoError(t, tree.Delete(keys[3])) // 14, black leaf
	require.NoError(t, tree.Validate())

	ref := []int64{3, 4, 5, 7, 8, 12, 16, 19}
	assert.Equal(t, ref, inorderints(tree))
	assert.Equal(t, int64(8), tree.Count())

	// value 10 is gone, deleting it again fails and changes nothing.
	assert.Equal(t, api.ErrorKeyMissing, tree.Delete(keys[0]))
	assert.Equal(t, ref, inorderints(tree))
	assert.Equal(t, int64(8), tree.Count())
}

func TestStringScenario(t *testing.T) {
	tree, err := NewTree("string", ByteString, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	words := []string{"pear", "apple", "fig", "banana", "apricot", "app"}
	keys := make([]*string, 0, len(words))
	for i := range words {
		keys = append(keys, &words[i])
		require.NoError(t, tree.Insert(&words[i]))
		require.NoError(t, tree.Validate())
	}

	ref := []string{"app", "apple", "apricot", "banana", "fig", "pear"}
	outs := make([]string, 0)
	for key := range tree.Inorder() {
		outs = append(outs, *(key.(*string)))
	}
	assert.Equal(t, ref, outs)

	for _, key := range keys {
		require.NoError(t, tree.Delete(key))
		require.NoError(t, tree.Validate())
	}
	assert.Equal(t, int64(0), tree.Count())
}

func TestCharacterKeys(t *testing.T) {
	tree, err := NewTree("character", Character, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	chars := []byte("thequickbrownfx")
	for i := range chars {
		require.NoError(t, tree.Insert(&chars[i]))
	}
	require.NoError(t, tree.Validate())

	outs := make([]byte, 0)
	for key := range tree.Inorder() {
		outs = append(outs, *(key.(*byte)))
	}
	assert.Equal(t, "bcefhiknoqrtuwx", string(outs))

	n := int64(10)
	assert.Equal(t, api.ErrorInvalidArgument, tree.Insert(&n))
	assert.Equal(t, api.ErrorInvalidArgument, tree.Insert(nil))
}

func TestDuplicateIdentity(t *testing.T) {
	tree, err := NewTree("duplicate", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	a, b := int64(5), int64(5)
	require.NoError(t, tree.Insert(&a))
	assert.Equal(t, api.ErrorDuplicateKey, tree.Insert(&a))
	assert.Equal(t, int64(1), tree.Count())

	// same value, different reference.
	require.NoError(t, tree.Insert(&b))
	assert.Equal(t, int64(2), tree.Count())
	assert.True(t, tree.Has(&a))
	assert.True(t, tree.Has(&b))

	require.NoError(t, tree.Delete(&a))
	assert.False(t, tree.Has(&a))
	assert.True(t, tree.Has(&b))
	assert.Equal(t, api.ErrorKeyMissing, tree.Delete(&a))
	require.NoError(t, tree.Validate())
}

func TestManyEqualValues(t *testing.T) {
	tree, err := NewTree("equal", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	keys := make([]*int64, 0, 200)
	for i := 0; i < 200; i++ {
		v := int64(i % 3)
		keys = append(keys, &v)
		require.NoError(t, tree.Insert(&v))
	}
	require.NoError(t, tree.Validate())
	for _, key := range keys {
		assert.Equal(t, api.ErrorDuplicateKey, tree.Insert(key))
	}

	// remove in an order unrelated to insertion.
	for i := 0; i < len(keys); i++ {
		key := keys[(i*7)%len(keys)]
		require.True(t, tree.Has(key))
		require.NoError(t, tree.Delete(key))
		require.False(t, tree.Has(key))
	}
	require.NoError(t, tree.Validate())
	assert.Equal(t, int64(0), tree.Count())
}

func TestRoundTrip(t *testing.T) {
	tree, err := NewTree("roundtrip", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	loadkeys(t, tree, intkeys(50, 20, 80, 10, 30))
	before := inorderints(tree)

	x := int64(25)
	require.NoError(t, tree.Insert(&x))
	require.True(t, tree.Has(&x))
	require.NoError(t, tree.Delete(&x))

	assert.False(t, tree.Has(&x))
	assert.Equal(t, before, inorderints(tree))
	assert.NoError(t, tree.Validate())
}

func TestAllocationFailure(t *testing.T) {
	setts := s.Settings{"arena.capacity": int64(3), "arena.prealloc": int64(1)}
	tree, err := NewTree("alloc", Integer, setts)
	require.NoError(t, err)
	defer tree.Destroy()

	keys := intkeys(1, 2, 3, 4)
	loadkeys(t, tree, keys[:3])
	before := dumpstring(t, tree)

	assert.Equal(t, api.ErrorAllocation, tree.Insert(keys[3]))
	assert.Equal(t, int64(3), tree.Count())
	assert.False(t, tree.Has(keys[3]))
	assert.Equal(t, before, dumpstring(t, tree))
	assert.NoError(t, tree.Validate())

	stats, err := tree.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats["n_allocfails"])

	// free slot is reused.
	require.NoError(t, tree.Delete(keys[0]))
	require.NoError(t, tree.Insert(keys[3]))
	assert.Equal(t, []int64{2, 3, 4}, inorderints(tree))
}

func TestDeleteMinMax(t *testing.T) {
	tree, err := NewTree("minmax", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	_, err = tree.DeleteMin()
	assert.Equal(t, api.ErrorKeyMissing, err)
	_, err = tree.DeleteMax()
	assert.Equal(t, api.ErrorKeyMissing, err)

	loadkeys(t, tree, intkeys(10, 12, 2, 14, 5, 16, 7, 8, 19, 4, 3))
	ref := []int64{2, 3, 4, 5, 7, 8, 10, 12, 14, 16, 19}
	for len(ref) > 0 {
		key, err := tree.DeleteMin()
		require.NoError(t, err)
		assert.Equal(t, ref[0], *(key.(*int64)))
		ref = ref[1:]
		require.NoError(t, tree.Validate())
		if len(ref) == 0 {
			break
		}
		key, err = tree.DeleteMax()
		require.NoError(t, err)
		assert.Equal(t, ref[len(ref)-1], *(key.(*int64)))
		ref = ref[:len(ref)-1]
		require.NoError(t, tree.Validate())
	}
	assert.Equal(t, int64(0), tree.Count())
}

func TestHeightBound(t *testing.T) {
	tree, err := NewTree("height", Integer, nil)
	require.NoError(t, err)
	defer tree.Destroy()

	n := 10000
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = int64(i)
		require.NoError(t, tree.Insert(&keys[i]))
	}
	require.NoError(t, tree.Validate())
	if h := tree.Height(); float64(h) > maxheight(int64(n)) {
		t.Errorf("height %v exceeds %v", h, maxheight(int64(n)))
	}

	for i := 0; i < n; i += 2 {
		require.NoError(t, tree.Delete(&keys[i]))
	}
	require.NoError(t, tree.Validate())
	if h := tree.Height(); float64(h) > maxheight(int64(n/2)) {
		t.Errorf("height %v exceeds %v", h, maxheight(int64(n/2)))
	}
}

func BenchmarkInsert(b *testing.B) {
	setts := s.Settings{"arena.prealloc": int64(b.N)}
	tree, _ := NewTree("bench", Integer, setts)
	defer tree.Destroy()
	keys := make([]int64, b.N)
	for i := range keys {
		keys[i] = int64(i * 7919 % (b.N + 1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(&keys[i])
	}
}

func BenchmarkHas(b *testing.B) {
	tree, _ := NewTree("bench", Integer, nil)
	defer tree.Destroy()
	keys := make([]int64, 10000)
	for i := range keys {
		keys[i] = int64(i)
		tree.Insert(&keys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(&keys[i%len(keys)])
	}
}

//---- helpers

func intkeys(vals ...int64) []*int64 {
	keys := make([]*int64, 0, len(vals))
	for i := range vals {
		keys = append(keys, &vals[i])
	}
	return keys
}

func loadkeys(t *testing.T, tree *Tree, keys []*int64) {
	t.Helper()
	for _, key := range keys {
		require.NoError(t, tree.Insert(key))
		require.NoError(t, tree.Validate(), "after inserting %v", *key)
	}
}

func inorderints(tree *Tree) []int64 {
	outs := make([]int64, 0)
	for key := range tree.Inorder() {
		outs = append(outs, *(key.(*int64)))
	}
	return outs
}
