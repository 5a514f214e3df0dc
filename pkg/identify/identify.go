package identify

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/snwfog/circular.go/pkg/check"
	"github.com/snwfog/circular.go/pkg/util"
)

var (
	ErrNil         = errors.New("v cannot be nil")
	ErrUnsupported = errors.New("unsupported v type")
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Identify is implemented by values carrying their own identity.
type Identify interface {
	Identity() uint64
}

// Key returns the identity of v: Identity() when v implements Identify,
// otherwise the siphash of its bytes. Strings, byte slices and integers are
// supported; anything else is aborted through check.Abort.
func Key(v interface{}) uint64 {
	if util.IsNil(v) {
		check.Abort(errors.WithStack(ErrNil))
		return 0
	}

	switch x := v.(type) {
	case Identify:
		return x.Identity()
	case string:
		return siphash.Hash(sipHashKey1, sipHashKey2, []byte(x))
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x)
	case fmt.Stringer:
		return Key(x.String())
	case int:
		return uintHash(uint64(x))
	case int8:
		return uintHash(uint64(x))
	case int16:
		return uintHash(uint64(x))
	case int32:
		return uintHash(uint64(x))
	case int64:
		return uintHash(uint64(x))
	case uint:
		return uintHash(uint64(x))
	case uint8:
		return uintHash(uint64(x))
	case uint16:
		return uintHash(uint64(x))
	case uint32:
		return uintHash(uint64(x))
	case uint64:
		return uintHash(x)
	case uintptr:
		return uintHash(uint64(x))
	}

	check.Abort(errors.Wrapf(ErrUnsupported, "%T", v))
	return 0
}

func uintHash(num uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], num)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}
