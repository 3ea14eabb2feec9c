package core

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

// requireErrMsg asserts the error carries the given substring in its
// errbuilder message (falling back to Error() for plain errors).
func requireErrMsg(t *testing.T, err error, substr string) {
	t.Helper()
	require.Error(t, err)
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && builder.Msg != "" {
		require.Contains(t, builder.Msg, substr)
		return
	}
	require.Contains(t, err.Error(), substr)
}
