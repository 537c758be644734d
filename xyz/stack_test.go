// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixStack(t *testing.T) {
	var st MatrixStack
	_, err := st.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)
	_, err = st.Top()
	assert.ErrorIs(t, err, ErrEmptyStack)

	st.Reset()
	assert.Equal(t, 1, st.Len())
	top, err := st.Top()
	require.NoError(t, err)
	assert.True(t, top.IsIdentity())

	tr := *math32.NewTranslation(1, 2, 3)
	st.Push(tr)
	assert.Equal(t, 2, st.Len())
	m, err := st.Pop()
	require.NoError(t, err)
	assert.Equal(t, tr, m)

	st.Push(tr)
	st.Push(tr)
	st.Reset()
	assert.Equal(t, 1, st.Len())

	st.Clear()
	assert.Equal(t, 0, st.Len())
}
