package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Initial time = %v, want %v", mock.Now(), start)
	}
	if got := mock.Advance(1500*time.Millisecond); !got.Equal(start.Add(1500*time.Millisecond)) {
		t.Errorf("Advance returned %v", got)
	}

	mock.SetTime(start)
	if !mock.Now().Equal(start) {
		t.Errorf("SetTime did not rewind: %v", mock.Now())
	}
}

// TestMockTimeProviderConcurrency mirrors a renderer reading the clock while a scheduler advances it
func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := start.Add(200 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Time = %v after concurrent advances, want %v", mock.Now(), want)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
