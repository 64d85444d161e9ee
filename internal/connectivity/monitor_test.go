package connectivity

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestMonitor_InitialState(t *testing.T) {
	assert.True(t, NewMonitor(true, logger.Nop()).IsOnline())
	assert.False(t, NewMonitor(false, logger.Nop()).IsOnline())
}

func TestMonitor_SetOnline_NotifiesOnTransitionOnly(t *testing.T) {
	m := NewMonitor(true, logger.Nop())

	var got []bool
	m.Subscribe(func(online bool) { got = append(got, online) })

	m.SetOnline(true) // без перехода
	m.SetOnline(false)
	m.SetOnline(false)
	m.SetOnline(true)

	assert.Equal(t, []bool{false, true}, got)
	assert.True(t, m.IsOnline())
}

func TestMonitor_Unsubscribe(t *testing.T) {
	m := NewMonitor(true, logger.Nop())

	calls := 0
	unsubscribe := m.Subscribe(func(bool) { calls++ })

	m.SetOnline(false)
	unsubscribe()
	unsubscribe()
	m.SetOnline(true)

	assert.Equal(t, 1, calls)
}

func TestMonitor_MultipleSubscribers(t *testing.T) {
	m := NewMonitor(false, logger.Nop())

	var a, b bool
	m.Subscribe(func(online bool) { a = online })
	m.Subscribe(func(online bool) { b = online })

	m.SetOnline(true)

	assert.True(t, a)
	assert.True(t, b)
}

func TestMonitor_SubscriberMayReadState(t *testing.T) {
	m := NewMonitor(true, logger.Nop())

	var seen bool
	m.Subscribe(func(bool) { seen = m.IsOnline() })
	m.SetOnline(false)

	assert.False(t, seen)
}

func TestMonitor_ConcurrentAccess(t *testing.T) {
	m := NewMonitor(true, logger.Nop())
	m.Subscribe(func(bool) {})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.SetOnline(i%2 == 0)
			_ = m.IsOnline()
		}(i)
	}
	wg.Wait()
}
