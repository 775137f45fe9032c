package variantfsm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionZeroValue(t *testing.T) {
	var u state

	assert.Equal(t, V1, u.Variant())
	assert.Equal(t, "idle", u.VariantName())
	assert.Equal(t, idle{}, u.Value())

	_, ok := u.Get1()
	assert.True(t, ok)
}

func TestUnionWithAndGet(t *testing.T) {
	u := state{}.With2(counting{x: 7})

	assert.Equal(t, V2, u.Variant())
	assert.Equal(t, "counting", u.VariantName())
	assert.Equal(t, counting{x: 7}, u.Value())

	c, ok := u.Get2()
	require.True(t, ok)
	assert.Equal(t, 7, c.x)

	_, ok = u.Get1()
	assert.False(t, ok)
	d, ok := u.Get3()
	assert.False(t, ok)
	assert.Equal(t, done{}, d)

	// Replacing the member drops the old payload.
	u = u.With3(done{x: true})
	_, ok = u.Get2()
	assert.False(t, ok)
	assert.Equal(t, V3, u.Variant())
}

func TestUnionValueSemantics(t *testing.T) {
	u := state{}.With2(counting{x: 1})
	copied := u

	act := Must(Act3(Stay[idle], func(c *counting) { c.x = 99 }, Stay[done]))
	act.apply(&copied)

	c, _ := u.Get2()
	assert.Equal(t, 1, c.x)
	c, _ = copied.Get2()
	assert.Equal(t, 99, c.x)
}

func TestHolds(t *testing.T) {
	u := state{}.With2(counting{})

	assert.True(t, Holds[counting](u))
	assert.False(t, Holds[idle](u))
	assert.False(t, Holds[done](u))
	assert.False(t, Holds[int](u), "types outside the union never match")
}

func TestVariantNames(t *testing.T) {
	assert.Equal(t, []string{"idle", "counting", "done"}, VariantNames(state{}))
	assert.Equal(t, []string{"int", "[]string", "*variantfsm.idle"}, VariantNames(Union3[int, []string, *idle]{}))
}

func TestVariantString(t *testing.T) {
	for i, v := range []Variant{V1, V2, V3, V4, V5} {
		assert.Equal(t, "V"+strconv.Itoa(i+1), v.String())
	}
}

func TestMatch3(t *testing.T) {
	describe := func(u state) string {
		return Match3(u,
			func(idle) string { return "idle" },
			func(c counting) string { return "counting " + strconv.Itoa(c.x) },
			func(d done) string { return "done " + strconv.FormatBool(d.x) },
		)
	}

	assert.Equal(t, "idle", describe(state{}))
	assert.Equal(t, "counting 3", describe(state{}.With2(counting{x: 3})))
	assert.Equal(t, "done true", describe(state{}.With3(done{x: true})))
}

func TestMatchRequiresEveryHandler(t *testing.T) {
	// Missing handlers are rejected even when the active member has one.
	assert.Panics(t, func() {
		Match3[idle, counting, done, int](state{},
			func(idle) int { return 1 },
			func(counting) int { return 2 },
			nil,
		)
	})
}

func TestNextExhaustiveness(t *testing.T) {
	fa := func(idle) state { return state{} }
	fb := func(counting) state { return state{} }
	fc := func(done) state { return state{} }

	tests := []struct {
		name    string
		build   func() (Transition[state], error)
		missing []string
	}{
		{"without idle", func() (Transition[state], error) { return Next3(nil, fb, fc) }, []string{"V1 (idle)"}},
		{"without counting", func() (Transition[state], error) { return Next3(fa, nil, fc) }, []string{"V2 (counting)"}},
		{"without done", func() (Transition[state], error) { return Next3(fa, fb, nil) }, []string{"V3 (done)"}},
		{"without idle and done", func() (Transition[state], error) { return Next3(nil, fb, nil) }, []string{"V1 (idle)", "V3 (done)"}},
		{"without any", func() (Transition[state], error) {
			return Next3[idle, counting, done](nil, nil, nil)
		}, []string{"V1 (idle)", "V2 (counting)", "V3 (done)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := tt.build()
			require.ErrorIs(t, err, ErrMissingHandler)
			for _, m := range tt.missing {
				assert.Contains(t, err.Error(), m)
			}
			assert.Nil(t, next.apply)
		})
	}

	next, err := Next3(fa, fb, fc)
	require.NoError(t, err)
	assert.NotNil(t, next.apply)
}

func TestActExhaustiveness(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (Action[state], error)
		missing string
	}{
		{"without idle", func() (Action[state], error) {
			return Act3[idle, counting, done](nil, Stay[counting], Stay[done])
		}, "V1 (idle)"},
		{"without counting", func() (Action[state], error) {
			return Act3[idle, counting, done](Stay[idle], nil, Stay[done])
		}, "V2 (counting)"},
		{"without done", func() (Action[state], error) {
			return Act3[idle, counting, done](Stay[idle], Stay[counting], nil)
		}, "V3 (done)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.ErrorIs(t, err, ErrMissingHandler)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestMustPanicsOnMissingHandler(t *testing.T) {
	assert.Panics(t, func() {
		Must(Next3(func(idle) state { return state{} }, nil, func(done) state { return state{} }))
	})
}

func TestUnion2(t *testing.T) {
	type off struct{}
	type on struct{ level int }
	type light = Union2[off, on]

	toggle := Must(Next2(
		func(off) light { return light{}.With2(on{level: 1}) },
		func(on) light { return light{}.With1(off{}) },
	))
	brighten := Must(Act2(Stay[off], func(o *on) { o.level++ }))

	m, err := NewMachine(light{})
	require.NoError(t, err)

	m.Step(toggle, brighten)
	o, ok := m.State().Get2()
	require.True(t, ok)
	assert.Equal(t, 2, o.level)
	assert.Equal(t, "off -> on", m.LastTransition())

	m.Next(toggle)
	assert.True(t, m.IsState(V1))
	assert.Equal(t, "on", Match2(light{}.With2(on{}), func(off) string { return "off" }, func(on) string { return "on" }))

	_, err = Next2[off, on](nil, nil)
	require.ErrorIs(t, err, ErrMissingHandler)
}

func TestUnion4(t *testing.T) {
	type u4 = Union4[int, string, bool, float64]

	next := Must(Next4(
		func(i int) u4 { return u4{}.With2(strconv.Itoa(i)) },
		func(s string) u4 { return u4{}.With3(s != "") },
		func(b bool) u4 { return u4{}.With4(1.5) },
		func(f float64) u4 { return u4{}.With4(f * 2) },
	))
	act := Must(Act4(Stay[int], func(s *string) { *s += "!" }, Stay[bool], Stay[float64]))

	m, err := NewMachine(u4{}.With1(42))
	require.NoError(t, err)

	m.Step(next, act)
	s, ok := m.State().Get2()
	require.True(t, ok)
	assert.Equal(t, "42!", s)

	m.Step(next, act)
	m.Step(next, act)
	m.Step(next, act)
	f, ok := m.State().Get4()
	require.True(t, ok)
	assert.Equal(t, 3.0, f)
	assert.Equal(t, "float64 -> float64", m.LastTransition())

	_, err = Act4[int, string, bool, float64](Stay[int], Stay[string], Stay[bool], nil)
	assert.ErrorIs(t, err, ErrMissingHandler)
}

func TestUnion5(t *testing.T) {
	type u5 = Union5[int8, int16, int32, int64, uint]

	next := Must(Next5(
		func(v int8) u5 { return u5{}.With2(int16(v) + 1) },
		func(v int16) u5 { return u5{}.With3(int32(v) + 1) },
		func(v int32) u5 { return u5{}.With4(int64(v) + 1) },
		func(v int64) u5 { return u5{}.With5(uint(v) + 1) },
		func(v uint) u5 { return u5{}.With5(v) },
	))
	act := Must(Act5(Stay[int8], Stay[int16], Stay[int32], Stay[int64], Stay[uint]))

	m, err := NewMachine(u5{})
	require.NoError(t, err)

	steps, err := m.RunUntil(next, act, 10, V5)
	require.NoError(t, err)
	assert.Equal(t, 4, steps)

	v, ok := m.State().Get5()
	require.True(t, ok)
	assert.Equal(t, uint(4), v)
	assert.True(t, Holds[uint](m.State()))

	width := Match5(m.State(),
		func(int8) int { return 8 },
		func(int16) int { return 16 },
		func(int32) int { return 32 },
		func(int64) int { return 64 },
		func(uint) int { return 0 },
	)
	assert.Zero(t, width)

	_, err = Next5[int8, int16, int32, int64, uint](nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingHandler)
}
