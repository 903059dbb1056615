// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"strings"

	"github.com/ik5/pcm8wav/chunk"
)

func joinIDs(ids []chunk.ID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = id.String()
	}
	return strings.Join(s, " ")
}
