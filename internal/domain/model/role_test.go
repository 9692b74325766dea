package model

import "testing"

var allOperations = []Operation{
	OpPlaceOrder, OpAdvanceOrder, OpCancelOrder, OpViewOrders, OpDeleteOrder,
	OpCreateTable, OpViewTables, OpUpdateTable, OpDeleteTable,
	OpViewProducts, OpManageMenu, OpManageUsers, OpViewStats,
}

func TestAdministratorCanEverything(t *testing.T) {
	for _, op := range allOperations {
		if !RoleAdministrator.Can(op) {
			t.Fatalf("administrator must be allowed %q", op)
		}
	}
}

func TestServerCapabilities(t *testing.T) {
	allowed := map[Operation]bool{
		OpPlaceOrder:   true,
		OpAdvanceOrder: true,
		OpViewOrders:   true,
		OpViewTables:   true,
		OpUpdateTable:  true,
		OpViewProducts: true,
	}
	for _, op := range allOperations {
		if RoleServer.Can(op) != allowed[op] {
			t.Fatalf("server capability for %q must be %v", op, allowed[op])
		}
	}
}

func TestServerCannotCancelOrDelete(t *testing.T) {
	if RoleServer.Can(OpCancelOrder) {
		t.Fatal("server must not cancel orders")
	}
	if RoleServer.Can(OpDeleteOrder) {
		t.Fatal("server must not delete orders")
	}
	if RoleServer.Can(OpDeleteTable) {
		t.Fatal("server must not delete tables")
	}
}

func TestReceptionistCannotAdvance(t *testing.T) {
	if !RoleReceptionist.Can(OpPlaceOrder) {
		t.Fatal("receptionist must place orders")
	}
	if RoleReceptionist.Can(OpAdvanceOrder) {
		t.Fatal("receptionist must not advance orders")
	}
}

func TestCashierIsReadOnly(t *testing.T) {
	for _, op := range allOperations {
		switch op {
		case OpViewOrders, OpViewTables, OpViewProducts:
			if !RoleCashier.Can(op) {
				t.Fatalf("cashier must be allowed %q", op)
			}
		default:
			if RoleCashier.Can(op) {
				t.Fatalf("cashier must not be allowed %q", op)
			}
		}
	}
}

func TestCustomerSeesOnlyMenu(t *testing.T) {
	for _, op := range allOperations {
		want := op == OpViewProducts
		if RoleCustomer.Can(op) != want {
			t.Fatalf("customer capability for %q must be %v", op, want)
		}
	}
}

func TestUnknownRoleDeniedEverything(t *testing.T) {
	for _, op := range allOperations {
		if Role("Ghost").Can(op) {
			t.Fatalf("unknown role must be denied %q", op)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"Administrator", "Server", "Receptionist", "Cashier", "Customer"} {
		role, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("parse %q failed: %v", raw, err)
		}
		if string(role) != raw {
			t.Fatalf("expected role %q, got %q", raw, role)
		}
	}
	if _, err := ParseRole("server"); err == nil {
		t.Fatal("role names are case sensitive")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatal("empty role must be rejected")
	}
}

func TestTableStateValid(t *testing.T) {
	for _, s := range []TableState{TableStateFree, TableStateOccupied, TableStateReserved} {
		if !s.Valid() {
			t.Fatalf("state %q should be valid", s)
		}
	}
	if TableState("Busy").Valid() {
		t.Fatal("unknown table state should be invalid")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range ProductCategories {
		if !ValidCategory(c) {
			t.Fatalf("category %q should be valid", c)
		}
	}
	if ValidCategory("Desserts") {
		t.Fatal("unknown category should be invalid")
	}
}
