package event

import "testing"

func TestSignalInvokeOrder(t *testing.T) {
	var s Signal[string]
	var got []string

	s.AddListener(func(v string) { got = append(got, "a:"+v) })
	s.AddListener(func(v string) { got = append(got, "b:"+v) })
	s.AddListener(nil)

	if s.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", s.ListenerCount())
	}

	s.Invoke("x")
	if len(got) != 2 || got[0] != "a:x" || got[1] != "b:x" {
		t.Errorf("Expected [a:x b:x], got %v", got)
	}
}

func TestSignalRemoveListener(t *testing.T) {
	var s Signal[int]
	calls := 0
	id := s.AddListener(func(int) { calls++ })
	s.AddListener(func(int) { calls += 10 })

	s.RemoveListener(id)
	s.Invoke(1)

	if calls != 10 {
		t.Errorf("Expected only second listener to fire, got calls=%d", calls)
	}

	s.RemoveAllListeners()
	s.Invoke(1)
	if calls != 10 {
		t.Errorf("Expected no listeners after RemoveAllListeners, got calls=%d", calls)
	}
}

func TestSignalListenerMayUnsubscribeDuringInvoke(t *testing.T) {
	var s Signal[int]
	var id ListenerID
	calls := 0
	id = s.AddListener(func(int) {
		calls++
		s.RemoveListener(id)
	})

	s.Invoke(0)
	s.Invoke(0)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}
