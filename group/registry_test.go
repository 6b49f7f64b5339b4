package group

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/opprof/errs"
)

func TestRegistry_Create(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Create("power", "slow_pow", "fast_pow"))

	members, ok := r.Members("power")
	require.True(t, ok)
	require.Equal(t, []string{"slow_pow", "fast_pow"}, members)

	_, ok = r.Members("missing")
	require.False(t, ok)
}

func TestRegistry_Create_EmptyName(t *testing.T) {
	r := NewRegistry()

	require.ErrorIs(t, r.Create("", "a"), errs.ErrInvalidGroupName)
	require.Equal(t, 0, r.Len())
}

func TestRegistry_Create_KeepsDuplicatesAndEmpty(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Create("dups", "a", "a", "b"))
	require.NoError(t, r.Create("empty"))

	members, _ := r.Members("dups")
	require.Equal(t, []string{"a", "a", "b"}, members)

	members, ok := r.Members("empty")
	require.True(t, ok)
	require.Empty(t, members)
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Create("power", "slow_pow"))
	require.NoError(t, r.Create("factorial", "factorial_iter"))
	require.NoError(t, r.Create("power", "fast_pow", "fast_pow_iter"))

	require.Equal(t, 2, r.Len())
	members, _ := r.Members("power")
	require.Equal(t, []string{"fast_pow", "fast_pow_iter"}, members)

	all := r.All()
	require.Equal(t, []Group{
		{Name: "power", Series: []string{"fast_pow", "fast_pow_iter"}},
		{Name: "factorial", Series: []string{"factorial_iter"}},
	}, all)
}

func TestRegistry_MembersIsCopy(t *testing.T) {
	r := NewRegistry()
	input := []string{"a", "b"}
	require.NoError(t, r.Create("g", input...))

	input[0] = "changed"
	members, _ := r.Members("g")
	require.Equal(t, []string{"a", "b"}, members)

	members[1] = "changed"
	again, _ := r.Members("g")
	require.Equal(t, []string{"a", "b"}, again)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("power", "slow_pow"))

	r.Reset()

	require.Equal(t, 0, r.Len())
	require.Empty(t, r.All())
	_, ok := r.Members("power")
	require.False(t, ok)

	require.NoError(t, r.Create("factorial", "factorial_iter"))
	require.Equal(t, []Group{{Name: "factorial", Series: []string{"factorial_iter"}}}, r.All())
}
