package di_test

import (
	"errors"
	"testing"

	"github.com/grazierShahid/OOP-context/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures: a target with two dependency slots.
type ledger struct{ entries []string }

type clock struct{ now string }

type gateway struct {
	ledger *ledger
	clock  *clock
}

const (
	keyLedger di.Key = "ledger"
	keyClock  di.Key = "clock"
)

func newGateway() *di.Service[gateway] {
	return di.Init(func() *gateway { return &gateway{} })
}

func newLedger() *di.Service[ledger] {
	return di.Init(func() *ledger { return &ledger{} })
}

// TestInitAndValue verifies Init runs the constructor and Value hands the
// same pointer back.
func TestInitAndValue(t *testing.T) {
	t.Parallel()

	svc := newGateway()
	require.NotNil(t, svc)
	require.NotNil(t, svc.Value())
	assert.Same(t, svc.Value(), svc.Value())
}

// TestWith_WiresInOrderAndRecords verifies successful wiring binds the
// dependency and records it under its key.
func TestWith_WiresInOrderAndRecords(t *testing.T) {
	t.Parallel()

	gw := newGateway()
	led := newLedger()
	clk := di.Init(func() *clock { return &clock{now: "t0"} })

	_, err := gw.With(
		di.Inject(keyLedger, led, func(g *gateway, l *ledger) { g.ledger = l }),
		di.Inject(keyClock, clk, func(g *gateway, c *clock) { g.clock = c }),
	)
	require.NoError(t, err)

	assert.Same(t, led.Value(), gw.Value().ledger)
	assert.Same(t, clk.Value(), gw.Value().clock)
	assert.True(t, gw.Has(keyLedger))
	assert.True(t, gw.Has(keyClock))
}

// TestWith_NilInjectorSkipped verifies nil steps are no-ops.
func TestWith_NilInjectorSkipped(t *testing.T) {
	t.Parallel()

	gw := newGateway()
	got, err := gw.With(nil)
	require.NoError(t, err)
	assert.Same(t, gw, got)
}

// TestWith_StopsOnFirstError verifies a duplicate key aborts the remaining
// steps.
func TestWith_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	gw := newGateway()
	led := newLedger()
	clk := di.Init(func() *clock { return &clock{} })

	injLedger := di.Inject(keyLedger, led, func(g *gateway, l *ledger) { g.ledger = l })
	injClock := di.Inject(keyClock, clk, func(g *gateway, c *clock) { g.clock = c })

	_, err := gw.With(injLedger, injLedger, injClock)
	require.Error(t, err)

	var dup di.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, keyLedger, dup.Key)

	// first step applied, later ones not
	assert.NotNil(t, gw.Value().ledger)
	assert.Nil(t, gw.Value().clock)
	assert.False(t, gw.Has(keyClock))
}

// TestInject_Errors verifies each invalid-wiring shape maps to its typed
// error.
func TestInject_Errors(t *testing.T) {
	t.Parallel()

	validDep := newLedger()
	validBind := func(g *gateway, l *ledger) { g.ledger = l }

	cases := []struct {
		name   string
		target *di.Service[gateway]
		dep    *di.Service[ledger]
		bind   func(*gateway, *ledger)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "nil target service",
			target: nil,
			dep:    validDep,
			bind:   validBind,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, di.ErrNilTarget)
			},
		},
		{
			name:   "nil dependency service",
			target: newGateway(),
			dep:    nil,
			bind:   validBind,
			check: func(t *testing.T, err error) {
				var nde di.NilDependencyError
				require.True(t, errors.As(err, &nde))
				assert.Equal(t, keyLedger, nde.Key)
			},
		},
		{
			name:   "nil bind function",
			target: newGateway(),
			dep:    validDep,
			bind:   nil,
			check: func(t *testing.T, err error) {
				var nbe di.NilBindError
				require.True(t, errors.As(err, &nbe))
				assert.Equal(t, keyLedger, nbe.Key)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			inj := di.Inject(keyLedger, tc.dep, tc.bind)
			err := inj(tc.target)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

// TestDep verifies typed retrieval distinguishes missing from wrong-type.
func TestDep(t *testing.T) {
	t.Parallel()

	gw := newGateway()
	led := newLedger()
	_, err := gw.With(di.Inject(keyLedger, led, func(g *gateway, l *ledger) { g.ledger = l }))
	require.NoError(t, err)

	got, err := di.Dep[gateway, ledger](gw, keyLedger)
	require.NoError(t, err)
	assert.Same(t, led.Value(), got)

	_, err = di.Dep[gateway, ledger](gw, keyClock)
	var missing di.MissingDependencyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, keyClock, missing.Key)

	_, err = di.Dep[gateway, clock](gw, keyLedger)
	var wrong di.WrongTypeDependencyError
	require.True(t, errors.As(err, &wrong))
	assert.Equal(t, keyLedger, wrong.Key)
	assert.Equal(t, "*di_test.ledger", wrong.Got)
}

// TestMustDep verifies the panic on missing wiring.
func TestMustDep(t *testing.T) {
	t.Parallel()

	gw := newGateway()
	assert.Panics(t, func() {
		_ = di.MustDep[gateway, ledger](gw, keyLedger)
	})

	led := newLedger()
	_, err := gw.With(di.Inject(keyLedger, led, func(g *gateway, l *ledger) { g.ledger = l }))
	require.NoError(t, err)
	assert.Same(t, led.Value(), di.MustDep[gateway, ledger](gw, keyLedger))
}

// TestHas_NilSafe verifies Has tolerates nil receivers and empty bags.
func TestHas_NilSafe(t *testing.T) {
	t.Parallel()

	var nilSvc *di.Service[gateway]
	assert.False(t, nilSvc.Has(keyLedger))
	assert.False(t, newGateway().Has(keyLedger))
}
