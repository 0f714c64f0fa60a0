package core

import "testing"

func TestFallbackWaitsOutGracePeriod(t *testing.T) {
	stack := &fakeStack{up: true}
	p := NewAddressFallbackPolicy(DefaultConfig())

	if p.Evaluate(10000, stack) {
		t.Errorf("Expected no commit at exactly the grace boundary")
	}
	if len(stack.applied) != 0 {
		t.Errorf("Expected no address applied before commit")
	}
	if !p.Evaluate(10001, stack) {
		t.Errorf("Expected commit just past the grace period")
	}
	if p.State() != FallbackCommitted {
		t.Errorf("Expected FallbackCommitted, got %d", p.State())
	}
}

func TestFallbackCommitsExactlyOnce(t *testing.T) {
	stack := &fakeStack{up: true}
	p := NewAddressFallbackPolicy(DefaultConfig())

	commits := 0
	for now := uint64(9000); now < 20000; now += 250 {
		if p.Evaluate(now, stack) {
			commits++
		}
	}

	if commits != 1 {
		t.Errorf("Expected exactly one commit across many iterations, got %d", commits)
	}
	if len(stack.applied) != 3 {
		t.Errorf("Expected one address triple applied, got %d values", len(stack.applied))
	}
	want := Addr4(10, 0, 2, 99)
	if stack.applied[0] != want {
		t.Errorf("Expected fallback address %s, got %s", want, stack.applied[0])
	}
}

func TestFallbackSkippedWhileAddressAssigned(t *testing.T) {
	stack := &fakeStack{up: true, assigned: true}
	p := NewAddressFallbackPolicy(DefaultConfig())

	if p.Evaluate(60000, stack) {
		t.Errorf("Expected no commit while a dynamic address is held")
	}
	if p.State() != FallbackPending {
		t.Errorf("Expected policy to stay pending, got %d", p.State())
	}

	// Deliberate one-shot semantics: losing the address later does arm
	// the still-pending policy again on the next evaluation.
	stack.assigned = false
	if !p.Evaluate(61000, stack) {
		t.Errorf("Expected pending policy to commit once the address is gone")
	}
}

func TestFallbackSkippedWhileInterfaceDown(t *testing.T) {
	stack := &fakeStack{up: false}
	p := NewAddressFallbackPolicy(DefaultConfig())

	if p.Evaluate(60000, stack) {
		t.Errorf("Expected no commit while the interface is down")
	}
}

func TestFallbackNeverRevisitsAfterCommit(t *testing.T) {
	stack := &fakeStack{up: true}
	p := NewAddressFallbackPolicy(DefaultConfig())

	if !p.Evaluate(15000, stack) {
		t.Fatalf("Expected initial commit")
	}

	// Even if the applied address later "disappears", the policy is done.
	stack.assigned = false
	if p.Evaluate(90000, stack) {
		t.Errorf("Expected no re-commit after the terminal transition")
	}
	if len(stack.applied) != 3 {
		t.Errorf("Expected the triple applied exactly once, got %d values", len(stack.applied))
	}
}
