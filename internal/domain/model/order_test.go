package model

import "testing"

func TestOrderStateValid(t *testing.T) {
	valid := []OrderState{OrderStatePlaced, OrderStatePreparing, OrderStateReady, OrderStateDelivered, OrderStateCancelled}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("state %q should be valid", s)
		}
	}
	if OrderState("Facturado").Valid() {
		t.Fatal("unknown state should be invalid")
	}
	if OrderState("").Valid() {
		t.Fatal("empty state should be invalid")
	}
}

func TestOrderStateTerminal(t *testing.T) {
	if !OrderStateDelivered.Terminal() || !OrderStateCancelled.Terminal() {
		t.Fatal("delivered and cancelled must be terminal")
	}
	for _, s := range []OrderState{OrderStatePlaced, OrderStatePreparing, OrderStateReady} {
		if s.Terminal() {
			t.Fatalf("state %q must not be terminal", s)
		}
	}
}

func TestOrderStateForwardTransitions(t *testing.T) {
	steps := []struct {
		from OrderState
		to   OrderState
	}{
		{OrderStatePlaced, OrderStatePreparing},
		{OrderStatePreparing, OrderStateReady},
		{OrderStateReady, OrderStateDelivered},
	}
	for _, step := range steps {
		if !step.from.CanTransitionTo(step.to) {
			t.Fatalf("%q -> %q must be allowed", step.from, step.to)
		}
	}
}

func TestOrderStateNoSkipping(t *testing.T) {
	if OrderStatePlaced.CanTransitionTo(OrderStateReady) {
		t.Fatal("placed must not jump to ready")
	}
	if OrderStatePlaced.CanTransitionTo(OrderStateDelivered) {
		t.Fatal("placed must not jump to delivered")
	}
	if OrderStatePreparing.CanTransitionTo(OrderStateDelivered) {
		t.Fatal("preparing must not jump to delivered")
	}
}

func TestOrderStateNoBackwardTransitions(t *testing.T) {
	if OrderStateReady.CanTransitionTo(OrderStatePreparing) {
		t.Fatal("ready must not move back to preparing")
	}
	if OrderStatePreparing.CanTransitionTo(OrderStatePlaced) {
		t.Fatal("preparing must not move back to placed")
	}
}

func TestOrderStateCancelFromAnyNonTerminal(t *testing.T) {
	for _, s := range []OrderState{OrderStatePlaced, OrderStatePreparing, OrderStateReady} {
		if !s.CanTransitionTo(OrderStateCancelled) {
			t.Fatalf("%q must be cancellable", s)
		}
	}
}

func TestOrderStateTerminalIsImmutable(t *testing.T) {
	targets := []OrderState{OrderStatePlaced, OrderStatePreparing, OrderStateReady, OrderStateDelivered, OrderStateCancelled}
	for _, terminal := range []OrderState{OrderStateDelivered, OrderStateCancelled} {
		for _, next := range targets {
			if terminal.CanTransitionTo(next) {
				t.Fatalf("%q -> %q must be rejected", terminal, next)
			}
		}
	}
}

func TestOrderLineSubtotal(t *testing.T) {
	line := OrderLine{Quantity: 2, UnitPrice: 250}
	if got := line.Subtotal(); got != 500 {
		t.Fatalf("expected subtotal 500, got %v", got)
	}
}
