package model

import "fmt"

// Role is the closed set of actor roles.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleServer        Role = "Server"
	RoleReceptionist  Role = "Receptionist"
	RoleCashier       Role = "Cashier"
	RoleCustomer      Role = "Customer"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdministrator, RoleServer, RoleReceptionist, RoleCashier, RoleCustomer:
		return Role(raw), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// Operation names a role-gated action checked at the coordinator boundary.
type Operation string

const (
	OpPlaceOrder    Operation = "order.place"
	OpAdvanceOrder  Operation = "order.advance"
	OpCancelOrder   Operation = "order.cancel"
	OpViewOrders    Operation = "order.view"
	OpDeleteOrder   Operation = "order.delete"
	OpCreateTable   Operation = "table.create"
	OpViewTables    Operation = "table.view"
	OpUpdateTable   Operation = "table.update"
	OpDeleteTable   Operation = "table.delete"
	OpViewProducts  Operation = "product.view"
	OpManageMenu    Operation = "product.manage"
	OpManageUsers   Operation = "user.manage"
	OpViewStats     Operation = "stats.view"
)

// capabilities maps role x operation to allowed. Absent pairs are denied.
var capabilities = map[Role]map[Operation]bool{
	RoleAdministrator: {
		OpPlaceOrder:   true,
		OpAdvanceOrder: true,
		OpCancelOrder:  true,
		OpViewOrders:   true,
		OpDeleteOrder:  true,
		OpCreateTable:  true,
		OpViewTables:   true,
		OpUpdateTable:  true,
		OpDeleteTable:  true,
		OpViewProducts: true,
		OpManageMenu:   true,
		OpManageUsers:  true,
		OpViewStats:    true,
	},
	RoleServer: {
		OpPlaceOrder:   true,
		OpAdvanceOrder: true,
		OpViewOrders:   true,
		OpViewTables:   true,
		OpUpdateTable:  true,
		OpViewProducts: true,
	},
	RoleReceptionist: {
		OpPlaceOrder:   true,
		OpViewOrders:   true,
		OpViewTables:   true,
		OpViewProducts: true,
	},
	RoleCashier: {
		OpViewOrders:   true,
		OpViewTables:   true,
		OpViewProducts: true,
	},
	RoleCustomer: {
		OpViewProducts: true,
	},
}

// Can reports whether the role is allowed to perform the operation.
func (r Role) Can(op Operation) bool {
	return capabilities[r][op]
}
