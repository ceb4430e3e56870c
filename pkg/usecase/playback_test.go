package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/infra/display"
	"github.com/m-mizutani/tubectl/pkg/usecase"
)

// mockDisplay is a mock implementation of DisplayEnvironment
type mockDisplay struct {
	element    string
	listeners  map[int]func()
	nextID     int
	enterCalls []string
	exitCalls  int
	err        error
}

func newMockDisplay() *mockDisplay {
	return &mockDisplay{listeners: map[int]func(){}}
}

func (m *mockDisplay) FullscreenElement() string { return m.element }

func (m *mockDisplay) RequestFullscreen(ctx context.Context, surface string) error {
	m.enterCalls = append(m.enterCalls, surface)
	return m.err
}

func (m *mockDisplay) ExitFullscreen(ctx context.Context) error {
	m.exitCalls++
	return m.err
}

func (m *mockDisplay) OnFullscreenChange(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// fire simulates the environment changing its fullscreen element
func (m *mockDisplay) fire(element string) {
	m.element = element
	for _, fn := range m.listeners {
		fn()
	}
}

func TestPlaybackSync_Toggle(t *testing.T) {
	env := newMockDisplay()
	p := usecase.NewPlaybackSync(env, "player")
	p.Start()
	defer p.Close()
	ctx := context.Background()

	var seen []model.PlaybackState
	p.Subscribe(func(s model.PlaybackState) { seen = append(seen, s) })

	gt.NoError(t, p.Toggle(ctx))
	gt.Equal(t, env.enterCalls, []string{"player"})
	gt.False(t, p.State().IsFullscreen)

	env.fire("player")
	gt.True(t, p.State().IsFullscreen)

	gt.NoError(t, p.Toggle(ctx))
	gt.Equal(t, env.exitCalls, 1)
	gt.True(t, p.State().IsFullscreen)

	env.fire("")
	gt.False(t, p.State().IsFullscreen)
	gt.Equal(t, seen, []model.PlaybackState{{IsFullscreen: true}, {IsFullscreen: false}})
}

func TestPlaybackSync_DetectionScope(t *testing.T) {
	t.Run("any element counts by default", func(t *testing.T) {
		env := newMockDisplay()
		p := usecase.NewPlaybackSync(env, "player")
		p.Start()
		defer p.Close()

		env.fire("sidebar-video")
		gt.True(t, p.State().IsFullscreen)
	})

	t.Run("surface scope ignores other elements", func(t *testing.T) {
		env := newMockDisplay()
		p := usecase.NewPlaybackSync(env, "player", usecase.WithSurfaceScope())
		p.Start()
		defer p.Close()

		env.fire("sidebar-video")
		gt.False(t, p.State().IsFullscreen)
		env.fire("player")
		gt.True(t, p.State().IsFullscreen)
	})
}

func TestPlaybackSync_ToggleFollowsMirroredState(t *testing.T) {
	env := newMockDisplay()
	p := usecase.NewPlaybackSync(env, "player", usecase.WithSurfaceScope())
	p.Start()
	defer p.Close()

	env.fire("sidebar-video")
	gt.False(t, p.State().IsFullscreen)

	gt.NoError(t, p.Toggle(context.Background()))
	gt.Equal(t, env.enterCalls, []string{"player"})
	gt.Equal(t, env.exitCalls, 0)
}

func TestPlaybackSync_ConcurrentChanges(t *testing.T) {
	doc := display.NewDocument()
	p := usecase.NewPlaybackSync(doc, "player")
	p.Start()
	defer p.Close()

	var mu sync.Mutex
	var mismatched int
	p.Subscribe(func(s model.PlaybackState) {
		// delivery is serialized with state changes, so what is delivered is current
		if p.State() != s {
			mu.Lock()
			mismatched++
			mu.Unlock()
		}
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				doc.Dispatch("player")
			} else {
				doc.Dispatch("")
			}
		}(i)
	}
	wg.Wait()

	doc.Dispatch("player")
	gt.True(t, p.State().IsFullscreen)
	mu.Lock()
	defer mu.Unlock()
	gt.Equal(t, mismatched, 0)
}

func TestPlaybackSync_Lifecycle(t *testing.T) {
	env := newMockDisplay()
	p := usecase.NewPlaybackSync(env, "player")

	env.fire("player")
	gt.False(t, p.State().IsFullscreen)

	p.Start()
	p.Start()
	gt.Equal(t, len(env.listeners), 1)
	env.fire("player")
	gt.True(t, p.State().IsFullscreen)

	p.Close()
	p.Close()
	gt.Equal(t, len(env.listeners), 0)

	// no longer listening, so the stale value stays
	env.fire("")
	gt.True(t, p.State().IsFullscreen)
}

func TestPlaybackSync_ToggleError(t *testing.T) {
	env := newMockDisplay()
	env.err = errors.New("not allowed")
	p := usecase.NewPlaybackSync(env, "player")

	err := p.Toggle(context.Background())
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("not allowed")
	gt.False(t, p.State().IsFullscreen)
}
