// SPDX-License-Identifier: EPL-2.0

package errkind

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Southclaws/fault/ftag"
	"github.com/stretchr/testify/assert"
)

var errBase = errors.New("base failure")

func TestConfig_TagsKind(t *testing.T) {
	t.Parallel()

	err := Config(errBase, "parsing tempo")

	assert.Equal(t, Configuration, Of(err))
	assert.True(t, Is(err, Configuration))
	assert.False(t, Is(err, IO))
	assert.ErrorIs(t, err, errBase)
	assert.Contains(t, err.Error(), "parsing tempo")
}

func TestIOf_TagsKind(t *testing.T) {
	t.Parallel()

	err := IOf(errBase, "opening input")

	assert.Equal(t, IO, Of(err))
	assert.ErrorIs(t, err, errBase)
}

func TestOf_Untagged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ftag.None, Of(nil))
	assert.Equal(t, ftag.None, Of(errBase))
	assert.Equal(t, ftag.None, Of(fmt.Errorf("context: %w", errBase)))
	assert.False(t, Is(errBase, Configuration))
}

func TestOf_OutermostKindWins(t *testing.T) {
	t.Parallel()

	err := Config(IOf(errBase, "reading"), "checking")

	assert.Equal(t, Configuration, Of(err))
}

func TestConfig_MessageNamesSentinelOnce(t *testing.T) {
	t.Parallel()

	err := IOf(Config(errBase, "tempo 0"), "decoding input")

	assert.Equal(t, "decoding input: tempo 0: base failure", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Config(nil, "nothing"))
	assert.NoError(t, IOf(nil, "nothing"))
}
