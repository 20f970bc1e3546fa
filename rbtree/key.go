package rbtree

import "fmt"
import "strconv"
import "strings"

import "github.com/bnclabs/gorbt/api"

// Key is an application owned pointer indexed by the tree. Refer to
// KeyKind for the pointer types accepted by each kind.
type Key = interface{}

// KeyKind selects the key comparator for a tree.
type KeyKind byte

const (
	// Integer keys are *int64.
	Integer KeyKind = iota + 1
	// Character keys are *byte.
	Character
	// ByteString keys are *[]byte or *string, compared byte by byte.
	ByteString
)

func (kind KeyKind) String() string {
	switch kind {
	case Integer:
		return "integer"
	case Character:
		return "character"
	case ByteString:
		return "bytestring"
	}
	return fmt.Sprintf("KeyKind(%d)", byte(kind))
}

// ParseKeyKind convert "int", "char" or "string" into KeyKind.
func ParseKeyKind(s string) (KeyKind, error) {
	switch strings.ToLower(s) {
	case "int", "integer":
		return Integer, nil
	case "char", "character":
		return Character, nil
	case "string", "bytes", "bytestring":
		return ByteString, nil
	}
	return 0, api.ErrorInvalidKeyType
}

func (kind KeyKind) valid() bool {
	switch kind {
	case Integer, Character, ByteString:
		return true
	}
	return false
}

// validkey return false for nil keys, typed or untyped, and for keys
// that don't match the tree's kind.
func validkey(kind KeyKind, key Key) bool {
	switch kind {
	case Integer:
		k, ok := key.(*int64)
		return ok && k != nil
	case Character:
		k, ok := key.(*byte)
		return ok && k != nil
	case ByteString:
		switch k := key.(type) {
		case *[]byte:
			return k != nil
		case *string:
			return k != nil
		}
	}
	return false
}

// compare return -1, 0, +1 if a is less than, equal to, greater than b.
// REQUIRE: both keys validated for kind.
func compare(kind KeyKind, a, b Key) int {
	switch kind {
	case Integer:
		x, y := *(a.(*int64)), *(b.(*int64))
		if x < y {
			return -1
		} else if x > y {
			return 1
		}
		return 0

	case Character:
		x, y := *(a.(*byte)), *(b.(*byte))
		if x < y {
			return -1
		} else if x > y {
			return 1
		}
		return 0

	case ByteString:
		if x, ok := a.(*[]byte); ok {
			if y, ok := b.(*[]byte); ok {
				return api.Binarycmp(*x, *y, false)
			}
		}
		return strings.Compare(keystr(a), keystr(b))
	}
	panic(fmt.Errorf("compare(): invalid key kind %v", kind))
}

func keystr(key Key) string {
	switch k := key.(type) {
	case *string:
		return *k
	case *[]byte:
		return string(*k)
	}
	panic(fmt.Errorf("keystr(): unexpected key type %T", key))
}

// keystring format key for dumps and log messages.
func keystring(kind KeyKind, key Key) string {
	switch kind {
	case Integer:
		return strconv.FormatInt(*(key.(*int64)), 10)
	case Character:
		return string([]byte{*(key.(*byte))})
	case ByteString:
		return keystr(key)
	}
	return fmt.Sprintf("%v", key)
}
