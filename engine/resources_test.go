package engine_test

import (
	"reflect"
	"testing"

	"github.com/plus3/frameloop/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gravity struct {
	Y float64
}

type score struct {
	Points int
}

func TestResources(t *testing.T) {
	t.Run("last insert wins", func(t *testing.T) {
		res := engine.NewResources()
		engine.Insert(res, gravity{Y: -9.8})
		engine.Insert(res, gravity{Y: -1.6})

		value, ok := engine.Get[gravity](res)
		require.True(t, ok)
		assert.Equal(t, gravity{Y: -1.6}, value)
		assert.Equal(t, 1, res.Len())
	})

	t.Run("absence is not an error", func(t *testing.T) {
		res := engine.NewResources()
		_, ok := engine.Get[gravity](res)
		assert.False(t, ok)
		ptr, ok := engine.GetMut[gravity](res)
		assert.False(t, ok)
		assert.Nil(t, ptr)
		_, ok = engine.Remove[gravity](res)
		assert.False(t, ok)
		assert.False(t, engine.Contains[gravity](res))
	})

	t.Run("get mut writes through", func(t *testing.T) {
		res := engine.NewResources()
		engine.Insert(res, score{})

		ptr, ok := engine.GetMut[score](res)
		require.True(t, ok)
		ptr.Points += 3

		value, _ := engine.Get[score](res)
		assert.Equal(t, 3, value.Points)
	})

	t.Run("independent pointers to different resources", func(t *testing.T) {
		res := engine.NewResources()
		engine.Insert(res, score{})
		engine.Insert(res, gravity{})

		s, _ := engine.GetMut[score](res)
		g, _ := engine.GetMut[gravity](res)
		engine.Insert(res, "inserted while holding pointers")

		s.Points = 1
		g.Y = 2

		gotS, _ := engine.Get[score](res)
		gotG, _ := engine.Get[gravity](res)
		assert.Equal(t, 1, gotS.Points)
		assert.Equal(t, 2.0, gotG.Y)
	})

	t.Run("distinct named types are distinct keys", func(t *testing.T) {
		type left int
		type right int
		res := engine.NewResources()
		engine.Insert(res, left(1))
		engine.Insert(res, right(2))
		engine.Insert(res, 3)

		l, _ := engine.Get[left](res)
		r, _ := engine.Get[right](res)
		i, _ := engine.Get[int](res)
		assert.Equal(t, left(1), l)
		assert.Equal(t, right(2), r)
		assert.Equal(t, 3, i)
	})

	t.Run("remove hands back the value", func(t *testing.T) {
		res := engine.NewResources()
		engine.Insert(res, score{Points: 9})

		value, ok := engine.Remove[score](res)
		require.True(t, ok)
		assert.Equal(t, 9, value.Points)
		assert.False(t, engine.Contains[score](res))
	})

	t.Run("get or insert", func(t *testing.T) {
		res := engine.NewResources()
		ptr := engine.GetOrInsert(res, score{Points: 1})
		ptr.Points++
		again := engine.GetOrInsert(res, score{Points: 100})
		assert.Same(t, ptr, again)
		assert.Equal(t, 2, again.Points)
	})

	t.Run("clear and each", func(t *testing.T) {
		res := engine.NewResources()
		engine.Insert(res, score{})
		engine.Insert(res, gravity{})

		var names []string
		res.Each(func(typ reflect.Type, value any) {
			names = append(names, typ.String())
			assert.Equal(t, reflect.Pointer, reflect.TypeOf(value).Kind())
		})
		assert.Equal(t, []string{"engine_test.gravity", "engine_test.score"}, names)

		res.Clear()
		assert.Zero(t, res.Len())
		assert.False(t, engine.Contains[score](res))
	})
}
