package richtext

import (
	"strings"

	"github.com/google/uuid"
)

const keyLen = 8

// genKey returns a block key not present in taken.
func genKey(taken map[string]int) string {
	for {
		k := strings.ReplaceAll(uuid.NewString(), "-", "")[:keyLen]
		if _, dup := taken[k]; !dup {
			return k
		}
	}
}
